// This file binds the dom package's tree into the JavaScript runtime as
// document and element objects.
package js

import (
	"strconv"
	"strings"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/mockdom/dom"
)

// bindDocument creates the document object for a parsed tree.
func (e *Env) bindDocument(doc *dom.Document) *goja.Object {
	vm := e.vm
	jsDoc := vm.NewObject()

	jsDoc.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		el := doc.GetElementByID(call.Arguments[0].String())
		if el == nil {
			return goja.Null()
		}
		return e.bindElement(el)
	})

	jsDoc.Set("getElementsByTagName", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return e.bindElements(nil)
		}
		return e.bindElements(doc.GetElementsByTagName(call.Arguments[0].String()))
	})

	// querySelector supports "#id" and plain tag selectors.
	jsDoc.Set("querySelector", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		selector := call.Arguments[0].String()
		var el *dom.Node
		if strings.HasPrefix(selector, "#") {
			el = doc.GetElementByID(selector[1:])
		} else if els := doc.GetElementsByTagName(selector); len(els) > 0 {
			el = els[0]
		}
		if el == nil {
			return goja.Null()
		}
		return e.bindElement(el)
	})

	jsDoc.DefineAccessorProperty("documentElement",
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			el := doc.DocumentElement()
			if el == nil {
				return goja.Null()
			}
			return e.bindElement(el)
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsDoc.DefineAccessorProperty("body",
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			el := doc.Body()
			if el == nil {
				return goja.Null()
			}
			return e.bindElement(el)
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	return jsDoc
}

// bindElement creates (or returns the cached) JavaScript object for an
// element node.
func (e *Env) bindElement(n *dom.Node) *goja.Object {
	if jsEl, ok := e.nodeMap[n]; ok {
		return jsEl
	}

	vm := e.vm
	jsEl := vm.NewObject()
	e.nodeMap[n] = jsEl

	jsEl.Set("nodeType", int(dom.ElementNode))

	jsEl.DefineAccessorProperty("tagName",
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(n.TagName())
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsEl.DefineAccessorProperty("id",
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(n.ID())
		}),
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) > 0 {
				n.SetAttribute("id", call.Arguments[0].String())
			}
			return goja.Undefined()
		}),
		goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsEl.DefineAccessorProperty("textContent",
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(n.TextContent())
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsEl.DefineAccessorProperty("children",
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return e.bindElements(n.ElementChildren())
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsEl.Set("getAttribute", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		name := call.Arguments[0].String()
		if !n.HasAttribute(name) {
			return goja.Null()
		}
		return vm.ToValue(n.GetAttribute(name))
	})

	jsEl.Set("setAttribute", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return goja.Undefined()
		}
		n.SetAttribute(call.Arguments[0].String(), call.Arguments[1].String())
		return goja.Undefined()
	})

	// The bounding box query reads environment state at call time, so the
	// geometry patch takes effect for elements bound before it was applied.
	jsEl.Set("getBoundingClientRect", func(call goja.FunctionCall) goja.Value {
		if r := e.fixedBoundingRect(); r != nil {
			return e.bindRect(r)
		}
		return e.bindRect(n.BoundingClientRect())
	})

	return jsEl
}

// bindElements creates an array-like object for a slice of elements.
func (e *Env) bindElements(els []*dom.Node) *goja.Object {
	arr := e.vm.NewArray()
	for i, el := range els {
		arr.Set(strconv.Itoa(i), e.bindElement(el))
	}
	arr.Set("length", len(els))
	return arr
}

// bindRect creates a DOMRect-shaped object.
func (e *Env) bindRect(r *dom.DOMRect) *goja.Object {
	rect := e.vm.NewObject()
	rect.Set("x", r.X)
	rect.Set("y", r.Y)
	rect.Set("width", r.Width)
	rect.Set("height", r.Height)
	rect.Set("top", r.Top())
	rect.Set("right", r.Right())
	rect.Set("bottom", r.Bottom())
	rect.Set("left", r.Left())
	return rect
}
