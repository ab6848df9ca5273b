package kwcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"kwprint/options"
)

// PrinterPath is the import path of the package whose calls are checked.
const PrinterPath = "kwprint/printer"

// Analyzer reports duplicate keyword bindings in print calls.
var Analyzer = &analysis.Analyzer{
	Name:     "kwdup",
	Doc:      "report print calls that bind the same keyword option more than once",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// A bare File binds nothing, so FileTag is absent.
var fieldByType = map[string]options.FieldEnum{
	"SepTag":       options.FieldSep,
	"SepBinding":   options.FieldSep,
	"EndTag":       options.FieldEnd,
	"EndBinding":   options.FieldEnd,
	"FileBinding":  options.FieldFile,
	"FlushTag":     options.FieldFlush,
	"FlushBinding": options.FieldFlush,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if call.Ellipsis.IsValid() {
			return
		}

		fn := printerFunc(pass.TypesInfo, call)
		if fn == nil {
			return
		}

		var seen options.FieldEnum

		for _, arg := range call.Args {
			field := fieldOf(pass.TypesInfo.TypeOf(arg))
			if field == options.FieldNone {
				continue
			}

			if seen.Has(field) {
				pass.Reportf(arg.Pos(), "`%s` keyword argument passed multiple times to %s()", field.Keyword(), fn.Name())
				continue
			}

			seen = seen.With(field)
		}
	})

	return nil, nil
}

// printerFunc returns the callee of call if it is a variadic function of
// the printer package.
func printerFunc(info *types.Info, call *ast.CallExpr) *types.Func {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != PrinterPath {
		return nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || !sig.Variadic() {
		return nil
	}

	return fn
}

func fieldOf(t types.Type) options.FieldEnum {
	if t == nil {
		return options.FieldNone
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return options.FieldNone
	}

	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != PrinterPath {
		return options.FieldNone
	}

	return fieldByType[obj.Name()]
}
