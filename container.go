package cjson

import (
	"fmt"
	"unicode/utf8"

	"github.com/reoring/cjson/internal/cbind"
)

// ---- shared helpers ----

func (v *Value) container(op string, want Kind) (cbind.Node, error) {
	n, err := v.live(op)
	if err != nil {
		return nil, err
	}
	if k := kindOf(n); k != want {
		return nil, errMismatch(op, want, k)
	}
	return n, nil
}

// takeChild validates that child can be attached (owned and distinct from
// the container) and returns its node. Ownership is cleared by the caller
// only after the C-side attach succeeded.
func takeChild(op string, parent cbind.Node, child *Value) (cbind.Node, error) {
	if child == nil || child.node == nil {
		return nil, &Error{Code: CodeOwnership, Op: op, Message: "nil or released child"}
	}
	if !child.owned {
		return nil, &Error{Code: CodeOwnership, Op: op, Message: "child is a non-owning view; detach or duplicate it first"}
	}
	if child.node == parent {
		return nil, &Error{Code: CodeOwnership, Op: op, Message: "cannot attach a container to itself"}
	}
	return child.node, nil
}

// ---- arrays ----

// Len returns the number of children of an array or object.
func (v *Value) Len() (int, error) {
	n, err := v.live("Len")
	if err != nil {
		return 0, err
	}
	if k := kindOf(n); k != KindArray && k != KindObject {
		return 0, errMismatch("Len", KindArray, k)
	}
	return cbind.ArraySize(n), nil
}

// Index returns the i-th element of an array as a non-owning view. The
// view stays valid while the array (or any ancestor owning it) is alive.
func (v *Value) Index(i int) (*Value, error) {
	n, err := v.container("Index", KindArray)
	if err != nil {
		return nil, err
	}
	item := cbind.ArrayItem(n, i)
	if item == nil {
		return nil, &Error{
			Code: CodeIndexRange, Op: "Index",
			Path:    fmt.Sprintf("/%d", i),
			Message: fmt.Sprintf("index %d outside array of length %d", i, cbind.ArraySize(n)),
		}
	}
	return &Value{node: item}, nil
}

// Append attaches child at the end of the array, transferring ownership of
// the child's subtree into the array. After a successful Append the child
// wrapper is a non-owning view.
func (v *Value) Append(child *Value) error {
	n, err := v.container("Append", KindArray)
	if err != nil {
		return err
	}
	cn, err := takeChild("Append", n, child)
	if err != nil {
		return err
	}
	if !cbind.AddItemToArray(n, cn) {
		return errAlloc("Append")
	}
	child.owned = false
	return nil
}

// Insert attaches child before position i, shifting later elements right.
// i == Len() is equivalent to Append. Ownership transfers as in Append.
func (v *Value) Insert(i int, child *Value) error {
	n, err := v.container("Insert", KindArray)
	if err != nil {
		return err
	}
	size := cbind.ArraySize(n)
	if i < 0 || i > size {
		return &Error{
			Code: CodeIndexRange, Op: "Insert",
			Path:    fmt.Sprintf("/%d", i),
			Message: fmt.Sprintf("index %d outside [0, %d]", i, size),
		}
	}
	cn, err := takeChild("Insert", n, child)
	if err != nil {
		return err
	}
	// keep append explicit rather than leaning on cJSON's out-of-range fallback
	if i == size {
		if !cbind.AddItemToArray(n, cn) {
			return errAlloc("Insert")
		}
	} else if !cbind.InsertItemInArray(n, i, cn) {
		return errAlloc("Insert")
	}
	child.owned = false
	return nil
}

// DeleteIndex removes and releases the i-th element.
func (v *Value) DeleteIndex(i int) error {
	n, err := v.container("DeleteIndex", KindArray)
	if err != nil {
		return err
	}
	if i < 0 || i >= cbind.ArraySize(n) {
		return &Error{
			Code: CodeIndexRange, Op: "DeleteIndex",
			Path:    fmt.Sprintf("/%d", i),
			Message: fmt.Sprintf("index %d outside array of length %d", i, cbind.ArraySize(n)),
		}
	}
	cbind.DeleteItemFromArray(n, i)
	return nil
}

// DetachIndex removes the i-th element and returns it as a newly owned
// Value, which must be Closed or re-attached. Views into the detached
// subtree remain usable; views into it after the new owner is Closed are
// undefined behavior.
func (v *Value) DetachIndex(i int) (*Value, error) {
	n, err := v.container("DetachIndex", KindArray)
	if err != nil {
		return nil, err
	}
	item := cbind.DetachItemFromArray(n, i)
	if item == nil {
		return nil, &Error{
			Code: CodeIndexRange, Op: "DetachIndex",
			Path:    fmt.Sprintf("/%d", i),
			Message: fmt.Sprintf("index %d outside array of length %d", i, cbind.ArraySize(n)),
		}
	}
	return &Value{node: item, owned: true}, nil
}

// ---- objects ----

// Get returns the member named key as a non-owning view. Lookup is
// case-sensitive; a missing key is a key_not_found error.
func (v *Value) Get(key string) (*Value, error) {
	n, err := v.container("Get", KindObject)
	if err != nil {
		return nil, err
	}
	item := cbind.ObjectItem(n, key)
	if item == nil {
		return nil, &Error{
			Code: CodeKeyNotFound, Op: "Get",
			Path:    "/" + escapePointerToken(key),
			Message: fmt.Sprintf("key %q not found", key),
		}
	}
	return &Value{node: item}, nil
}

// Has reports whether the object has a member named key.
func (v *Value) Has(key string) bool {
	if v == nil || v.node == nil || kindOf(v.node) != KindObject {
		return false
	}
	return cbind.HasObjectItem(v.node, key)
}

// Set attaches child under key, transferring ownership into the object.
// An existing member with the same key is replaced and released; cJSON
// itself permits duplicate keys, Set deliberately does not create them.
func (v *Value) Set(key string, child *Value) error {
	n, err := v.container("Set", KindObject)
	if err != nil {
		return err
	}
	if !utf8.ValidString(key) {
		return &Error{Code: CodeTypeMismatch, Op: "Set", Message: "invalid UTF-8 in key"}
	}
	cn, err := takeChild("Set", n, child)
	if err != nil {
		return err
	}
	if cbind.ObjectItem(n, key) != nil {
		if !cbind.ReplaceItemInObject(n, key, cn) {
			return errAlloc("Set")
		}
	} else if !cbind.AddItemToObject(n, key, cn) {
		return errAlloc("Set")
	}
	child.owned = false
	return nil
}

// Delete removes and releases the member named key.
func (v *Value) Delete(key string) error {
	n, err := v.container("Delete", KindObject)
	if err != nil {
		return err
	}
	if cbind.ObjectItem(n, key) == nil {
		return &Error{
			Code: CodeKeyNotFound, Op: "Delete",
			Path:    "/" + escapePointerToken(key),
			Message: fmt.Sprintf("key %q not found", key),
		}
	}
	cbind.DeleteItemFromObject(n, key)
	return nil
}

// Detach removes the member named key and returns it as a newly owned
// Value, which must be Closed or re-attached.
func (v *Value) Detach(key string) (*Value, error) {
	n, err := v.container("Detach", KindObject)
	if err != nil {
		return nil, err
	}
	item := cbind.DetachItemFromObject(n, key)
	if item == nil {
		return nil, &Error{
			Code: CodeKeyNotFound, Op: "Detach",
			Path:    "/" + escapePointerToken(key),
			Message: fmt.Sprintf("key %q not found", key),
		}
	}
	return &Value{node: item, owned: true}, nil
}

// Keys returns the member keys of an object in insertion order. cJSON
// does not deduplicate keys, so the result can contain repeats.
func (v *Value) Keys() ([]string, error) {
	n, err := v.container("Keys", KindObject)
	if err != nil {
		return nil, err
	}
	var keys []string
	for c := cbind.FirstChild(n); c != nil; c = cbind.NextSibling(c) {
		keys = append(keys, cbind.KeyOf(c))
	}
	return keys, nil
}

// Each walks the children of an array or object in order, passing the
// member key ("" for array elements) and a non-owning view. Returning
// false from fn stops the walk early.
func (v *Value) Each(fn func(key string, item *Value) bool) error {
	n, err := v.live("Each")
	if err != nil {
		return err
	}
	if k := kindOf(n); k != KindArray && k != KindObject {
		return errMismatch("Each", KindArray, k)
	}
	for c := cbind.FirstChild(n); c != nil; c = cbind.NextSibling(c) {
		if !fn(cbind.KeyOf(c), &Value{node: c}) {
			break
		}
	}
	return nil
}
