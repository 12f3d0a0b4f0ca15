//go:build wasm

// Command wasm exposes the ot library to a browser host via syscall/js.
// Changesets are registered in a map and looked up by id rather than
// mutated in place, since Changeset has no mutation API.
package main

import (
	"syscall/js"

	ot "github.com/inkwell-dev/ot"
	"github.com/inkwell-dev/ot/otjson"
)

var changesets = make(map[string]ot.Changeset)
var nextID int

func main() {
	c := make(chan struct{})

	js.Global().Set("otNew", js.FuncOf(jsNew))
	js.Global().Set("otApply", js.FuncOf(jsApply))
	js.Global().Set("otCompose", js.FuncOf(jsCompose))
	js.Global().Set("otTransform", js.FuncOf(jsTransform))
	js.Global().Set("otInvert", js.FuncOf(jsInvert))
	js.Global().Set("otIsNoop", js.FuncOf(jsIsNoop))
	js.Global().Set("otEncode", js.FuncOf(jsEncode))

	<-c
}

func store(c ot.Changeset) string {
	id := js.ValueOf(nextID).String()
	nextID++
	changesets[id] = c
	return id
}

func errValue(err error) interface{} {
	return map[string]interface{}{"error": err.Error()}
}

// jsNew decodes a wire-format changeset JSON string and registers it,
// returning {"id": "...", "fromLen": N, "toLen": N}.
func jsNew(this js.Value, args []js.Value) interface{} {
	if len(args) == 0 {
		return errValue(errMissingArg("wire JSON"))
	}
	c, err := otjson.Decode([]byte(args[0].String()))
	if err != nil {
		return errValue(err)
	}
	id := store(c)
	return map[string]interface{}{"id": id, "fromLen": c.FromLen(), "toLen": c.ToLen()}
}

func lookup(id string) (ot.Changeset, bool) {
	c, ok := changesets[id]
	return c, ok
}

func jsApply(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errValue(errMissingArg("id, text"))
	}
	c, ok := lookup(args[0].String())
	if !ok {
		return errValue(errUnknownID(args[0].String()))
	}
	result, err := ot.Apply(c, args[1].String())
	if err != nil {
		return errValue(err)
	}
	return result
}

func jsCompose(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errValue(errMissingArg("idA, idB"))
	}
	a, ok := lookup(args[0].String())
	if !ok {
		return errValue(errUnknownID(args[0].String()))
	}
	b, ok := lookup(args[1].String())
	if !ok {
		return errValue(errUnknownID(args[1].String()))
	}
	c, err := ot.Compose(a, b)
	if err != nil {
		return errValue(err)
	}
	return map[string]interface{}{"id": store(c)}
}

func jsTransform(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errValue(errMissingArg("idA, idB"))
	}
	a, ok := lookup(args[0].String())
	if !ok {
		return errValue(errUnknownID(args[0].String()))
	}
	b, ok := lookup(args[1].String())
	if !ok {
		return errValue(errUnknownID(args[1].String()))
	}
	aPrime, bPrime, err := ot.Transform(a, b)
	if err != nil {
		return errValue(err)
	}
	return map[string]interface{}{"aPrime": store(aPrime), "bPrime": store(bPrime)}
}

func jsInvert(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errValue(errMissingArg("id, text"))
	}
	c, ok := lookup(args[0].String())
	if !ok {
		return errValue(errUnknownID(args[0].String()))
	}
	inverse, err := ot.Invert(c, args[1].String())
	if err != nil {
		return errValue(err)
	}
	return map[string]interface{}{"id": store(inverse)}
}

func jsIsNoop(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errValue(errMissingArg("id"))
	}
	c, ok := lookup(args[0].String())
	if !ok {
		return errValue(errUnknownID(args[0].String()))
	}
	return c.IsNoop()
}

func jsEncode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errValue(errMissingArg("id"))
	}
	c, ok := lookup(args[0].String())
	if !ok {
		return errValue(errUnknownID(args[0].String()))
	}
	data, err := otjson.Encode(c)
	if err != nil {
		return errValue(err)
	}
	return string(data)
}
