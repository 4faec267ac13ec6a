// Package views renders session state into a headless element tree and
// turns user actions into bus events. Views never touch AppState: they
// react to events and are handed the data they render.
package views

import "slices"

// Element is a node of the rendered tree. It marshals to JSON so the HTTP
// layer can hand it to a browser as is.
type Element struct {
	Tag      string     `json:"tag"`
	Class    []string   `json:"class,omitempty"`
	Text     string     `json:"text,omitempty"`
	Src      string     `json:"src,omitempty"`
	Alt      string     `json:"alt,omitempty"`
	Disabled bool       `json:"disabled,omitempty"`
	Hidden   bool       `json:"hidden,omitempty"`
	Children []*Element `json:"children,omitempty"`
}

// Renderer builds the root element for a piece of state.
type Renderer[T any] interface {
	Render(data T) *Element
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc[T any] func(data T) *Element

func (f RenderFunc[T]) Render(data T) *Element {
	return f(data)
}

func NewElement(tag string, class ...string) *Element {
	return &Element{Tag: tag, Class: class}
}

func SetText(el *Element, value string) {
	if el != nil {
		el.Text = value
	}
}

func SetImage(el *Element, src string, alt string) {
	if el == nil {
		return
	}
	el.Src = src
	if alt != "" {
		el.Alt = alt
	}
}

func SetDisabled(el *Element, state bool) {
	if el != nil {
		el.Disabled = state
	}
}

func SetHidden(el *Element, hidden bool) {
	if el != nil {
		el.Hidden = hidden
	}
}

// ToggleClass adds class when on is set and removes it otherwise.
func ToggleClass(el *Element, class string, on bool) {
	if el == nil {
		return
	}
	i := slices.Index(el.Class, class)
	switch {
	case on && i < 0:
		el.Class = append(el.Class, class)
	case !on && i >= 0:
		el.Class = slices.Delete(el.Class, i, i+1)
	}
}

func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.Class, class)
}

func (e *Element) ReplaceChildren(children ...*Element) {
	e.Children = children
}
