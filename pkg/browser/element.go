package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Element is a located DOM element.
type Element struct {
	el      *rod.Element
	timeout time.Duration
}

// ScrollIntoView scrolls the element into the visible area if needed.
func (e *Element) ScrollIntoView() error {
	return e.el.ScrollIntoView()
}

// WaitVisible waits up to d for the element to become visible.
func (e *Element) WaitVisible(d time.Duration) error {
	el := e.el.Timeout(d)
	defer el.CancelTimeout()

	if err := el.WaitVisible(); err != nil {
		return fmt.Errorf("element not visible after %v: %w", d, err)
	}
	return nil
}

// Fill replaces the element's value with text.
func (e *Element) Fill(text string) error {
	el := e.el.Timeout(e.timeout)
	defer el.CancelTimeout()

	if err := el.SelectAllText(); err != nil {
		return fmt.Errorf("failed to select text: %w", err)
	}
	if err := el.Input(text); err != nil {
		return fmt.Errorf("failed to input text: %w", err)
	}
	return nil
}

// Click performs a single left click on the element.
func (e *Element) Click() error {
	el := e.el.Timeout(e.timeout)
	defer el.CancelTimeout()

	return el.Click(proto.InputMouseButtonLeft, 1)
}

// InputValue returns the current value property of an input element.
func (e *Element) InputValue() (string, error) {
	v, err := e.el.Property("value")
	if err != nil {
		return "", fmt.Errorf("failed to read value: %w", err)
	}
	return v.Str(), nil
}

// EvalBool runs js with the element bound to this and returns a boolean result.
func (e *Element) EvalBool(js string) (bool, error) {
	res, err := e.el.Eval(js)
	if err != nil {
		return false, fmt.Errorf("eval failed: %w", err)
	}
	return res.Value.Bool(), nil
}

// EvalString runs js with the element bound to this and returns a string result.
func (e *Element) EvalString(js string) (string, error) {
	res, err := e.el.Eval(js)
	if err != nil {
		return "", fmt.Errorf("eval failed: %w", err)
	}
	return res.Value.Str(), nil
}
