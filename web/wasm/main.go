//go:build js && wasm

package main

import (
	"errors"
	"syscall/js"

	"github.com/cwbudde/algo-sparam/internal/jsapi"
)

var (
	funcs []js.Func

	errMissingArgs = errors.New("missing arguments")
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("normalizeFreq", export(func(args []js.Value) any {
		if len(args) < 3 {
			return jsapi.ErrorResult(errMissingArgs)
		}
		res, err := jsapi.NormalizeFreq(stringify(args[0]), args[1].String(), args[2].String())
		if err != nil {
			return jsapi.ErrorResult(err)
		}
		return res
	}))

	api.Set("getSComponents", export(func(args []js.Value) any {
		if len(args) < 1 {
			return jsapi.ErrorResult(errMissingArgs)
		}
		res, err := jsapi.SComponents(stringify(args[0]))
		if err != nil {
			return jsapi.ErrorResult(err)
		}
		return res
	}))

	api.Set("getPlotData", export(func(args []js.Value) any {
		if len(args) < 3 {
			return jsapi.ErrorResult(errMissingArgs)
		}
		var settings []byte
		if len(args) > 3 {
			settings = stringify(args[3])
		}
		res, err := jsapi.PlotData(stringify(args[0]), args[1].String(), stringify(args[2]), settings)
		if err != nil {
			return jsapi.ErrorResult(err)
		}
		return res
	}))

	js.Global().Set("AlgoSParam", api)
	select {}
}

// stringify serializes a JS value with JSON.stringify. Undefined and null
// become nil.
func stringify(v js.Value) []byte {
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	return []byte(js.Global().Get("JSON").Call("stringify", v).String())
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
