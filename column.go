/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errinfo

import (
	"go/ast"
	"go/parser"
	"go/token"
	"sync"
)

// columnIndex maps (file, line, callee) to the column of the call
// expression. Each file is parsed at most once per process; files that
// cannot be read or parsed resolve every lookup to 0.
type columnIndex struct {
	files sync.Map // string -> *fileCalls
}

type fileCalls struct {
	once  sync.Once
	calls map[int][]callPos
}

type callPos struct {
	name   string
	column uint32
}

var columns columnIndex

func (ci *columnIndex) resolve(file string, line int, name string) uint32 {
	if file == "" || line <= 0 || name == "" {
		return 0
	}
	ci.preload(file)
	v, _ := ci.files.Load(file)
	fc := v.(*fileCalls)

	// Two calls of the same function on one line cannot be told apart
	// from a program counter, so that line resolves to 0.
	var col uint32
	for _, c := range fc.calls[line] {
		if c.name != name {
			continue
		}
		if col != 0 && col != c.column {
			return 0
		}
		col = c.column
	}
	return col
}

func (ci *columnIndex) preload(file string) {
	v, _ := ci.files.LoadOrStore(file, &fileCalls{})
	fc := v.(*fileCalls)
	fc.once.Do(func() { fc.calls = parseCalls(file) })
}

// PreloadColumns parses files into the column cache now, so that the first
// capture in each of them does not read and parse its source. Servers call
// it at startup with the files that capture on request paths. Unreadable
// files are cached as such and resolve to column 0.
func PreloadColumns(files ...string) {
	for _, file := range files {
		if file != "" {
			columns.preload(file)
		}
	}
}

// parseCalls indexes every call expression of file by line. A call is
// listed under the line it starts on and, if different, the line of its
// opening parenthesis.
func parseCalls(file string) map[int][]callPos {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil
	}

	calls := make(map[int][]callPos)
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		name := calleeName(call.Fun)
		if name == "" {
			return true
		}
		start := fset.Position(call.Pos())
		cp := callPos{name: name, column: uint32(start.Column)}
		calls[start.Line] = append(calls[start.Line], cp)
		if lp := fset.Position(call.Lparen).Line; lp != start.Line {
			calls[lp] = append(calls[lp], cp)
		}
		return true
	})
	return calls
}

func calleeName(fun ast.Expr) string {
	switch fn := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return fn.Name
	case *ast.SelectorExpr:
		return fn.Sel.Name
	case *ast.IndexExpr:
		return calleeName(fn.X)
	case *ast.IndexListExpr:
		return calleeName(fn.X)
	default:
		return ""
	}
}
