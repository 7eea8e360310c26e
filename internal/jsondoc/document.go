// Package jsondoc edits JSON configuration files without reordering them.
//
// Documents are parsed with hujson into an exact syntax tree, so object keys
// keep their original order and string and number literals keep their original
// spelling. Strict documents are written back with two-space indentation, the
// same shape npm and VS Code produce for package.json and tasks.json. JSONC
// documents (VS Code's launch.json) are written back as they were read, comments
// included, minus whatever was removed.
package jsondoc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tailscale/hujson"
)

// ErrSyntax is returned when the input cannot be parsed.
var ErrSyntax = errors.New("invalid JSON")

// Document is a parsed JSON document.
type Document struct {
	root  hujson.Value
	jsonc bool
}

// Parse parses data as a strict JSON document.
func Parse(data []byte) (*Document, error) {
	root, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if !root.IsStandard() {
		return nil, fmt.Errorf("%w: comments or trailing commas", ErrSyntax)
	}
	collapseDuplicates(&root)
	return &Document{root: root}, nil
}

// ParseJSONC parses data as JSON that may contain comments and trailing commas.
func ParseJSONC(data []byte) (*Document, error) {
	root, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	collapseDuplicates(&root)
	return &Document{root: root, jsonc: true}, nil
}

// Root returns the top-level value.
func (d *Document) Root() *hujson.Value {
	return &d.root
}

// Bytes serializes the document. Strict documents are re-indented without a
// trailing newline; JSONC documents keep their original layout.
func (d *Document) Bytes() []byte {
	if d.jsonc {
		return d.root.Pack()
	}
	var buf bytes.Buffer
	writeValue(&buf, &d.root, 0)
	return buf.Bytes()
}

func object(v *hujson.Value) *hujson.Object {
	if v == nil {
		return nil
	}
	obj, _ := v.Value.(*hujson.Object)
	return obj
}

func array(v *hujson.Value) *hujson.Array {
	if v == nil {
		return nil
	}
	arr, _ := v.Value.(*hujson.Array)
	return arr
}

// memberName decodes the name of an object member.
func memberName(m *hujson.ObjectMember) string {
	lit, _ := m.Name.Value.(hujson.Literal)
	return lit.String()
}

// IsObject reports whether v is a JSON object.
func IsObject(v *hujson.Value) bool {
	return object(v) != nil
}

// IsArray reports whether v is a JSON array.
func IsArray(v *hujson.Value) bool {
	return array(v) != nil
}

// Elements returns the elements of arr, or nil if it is not an array.
func Elements(arr *hujson.Value) []hujson.Value {
	if a := array(arr); a != nil {
		return a.Elements
	}
	return nil
}

// Lookup returns the value stored under key in obj, or nil. The pointer is only
// valid until members are added to or removed from obj.
func Lookup(obj *hujson.Value, key string) *hujson.Value {
	o := object(obj)
	if o == nil {
		return nil
	}
	for i := range o.Members {
		if memberName(&o.Members[i]) == key {
			return &o.Members[i].Value
		}
	}
	return nil
}

// StringValue returns the string held by v.
func StringValue(v *hujson.Value) (string, bool) {
	if v == nil {
		return "", false
	}
	lit, ok := v.Value.(hujson.Literal)
	if !ok || lit.Kind() != '"' {
		return "", false
	}
	return lit.String(), true
}

// Keys returns the keys of obj in document order.
func Keys(obj *hujson.Value) []string {
	o := object(obj)
	if o == nil {
		return nil
	}
	keys := make([]string, 0, len(o.Members))
	for i := range o.Members {
		keys = append(keys, memberName(&o.Members[i]))
	}
	return keys
}

// Object returns the object stored under key in obj, appending an empty one
// when the key is absent. It returns nil when the key holds a non-object value.
func Object(obj *hujson.Value, key string) *hujson.Value {
	if v := Lookup(obj, key); v != nil {
		if !IsObject(v) {
			return nil
		}
		return v
	}
	Set(obj, key, hujson.Value{Value: &hujson.Object{}})
	return Lookup(obj, key)
}

// Set stores value under key, replacing an existing entry in place or appending a new one.
func Set(obj *hujson.Value, key string, value hujson.Value) {
	o := object(obj)
	if o == nil {
		return
	}
	for i := range o.Members {
		if memberName(&o.Members[i]) == key {
			// Keep the whitespace and comments around the old value.
			value.BeforeExtra = o.Members[i].Value.BeforeExtra
			value.AfterExtra = o.Members[i].Value.AfterExtra
			o.Members[i].Value = value
			return
		}
	}
	o.Members = append(o.Members, hujson.ObjectMember{
		Name:  hujson.Value{Value: hujson.String(key)},
		Value: value,
	})
}

// SetString stores a string value under key.
func SetString(obj *hujson.Value, key, value string) {
	Set(obj, key, String(value))
}

// Delete removes key from obj and reports whether it was present.
func Delete(obj *hujson.Value, key string) bool {
	return len(DeleteFunc(obj, func(k string) bool { return k == key })) > 0
}

// DeleteFunc removes every entry of obj whose key satisfies del and returns
// the removed keys in document order.
func DeleteFunc(obj *hujson.Value, del func(key string) bool) []string {
	o := object(obj)
	if o == nil {
		return nil
	}
	trailing := len(o.Members) > 0 && o.Members[len(o.Members)-1].Value.AfterExtra != nil
	var removed []string
	kept := o.Members[:0]
	for i := range o.Members {
		name := memberName(&o.Members[i])
		if del(name) {
			removed = append(removed, name)
			continue
		}
		kept = append(kept, o.Members[i])
	}
	o.Members = kept
	if len(kept) > 0 {
		o.AfterExtra = setTrailingComma(&kept[len(kept)-1].Value, trailing, o.AfterExtra)
	}
	return removed
}

// RemoveElements removes every element of arr satisfying del and returns how many were removed.
func RemoveElements(arr *hujson.Value, del func(elem *hujson.Value) bool) int {
	a := array(arr)
	if a == nil {
		return 0
	}
	trailing := len(a.Elements) > 0 && a.Elements[len(a.Elements)-1].AfterExtra != nil
	kept := a.Elements[:0]
	removed := 0
	for i := range a.Elements {
		if del(&a.Elements[i]) {
			removed++
			continue
		}
		kept = append(kept, a.Elements[i])
	}
	a.Elements = kept
	if len(kept) > 0 {
		a.AfterExtra = setTrailingComma(&kept[len(kept)-1], trailing, a.AfterExtra)
	}
	return removed
}

// String returns a JSON string value.
func String(value string) hujson.Value {
	return hujson.Value{Value: hujson.String(value)}
}

// StringArray returns a JSON array holding the given strings.
func StringArray(values ...string) hujson.Value {
	arr := &hujson.Array{}
	for _, v := range values {
		arr.Elements = append(arr.Elements, String(v))
	}
	return hujson.Value{Value: arr}
}

// setTrailingComma makes last the final value of its object or array, with or
// without a trailing comma after it. A value is followed by a comma exactly when
// its AfterExtra is non-nil. It returns the container's updated AfterExtra.
func setTrailingComma(last *hujson.Value, trailing bool, after hujson.Extra) hujson.Extra {
	switch {
	case trailing && last.AfterExtra == nil:
		last.AfterExtra = hujson.Extra{}
	case !trailing && last.AfterExtra != nil:
		after = append(append(hujson.Extra{}, last.AfterExtra...), after...)
		last.AfterExtra = nil
	}
	return after
}

// collapseDuplicates keeps one member per name in every object of v. The member
// stays where the name first appeared and takes the value of its last
// occurrence, as JSON.parse does.
func collapseDuplicates(v *hujson.Value) {
	switch t := v.Value.(type) {
	case *hujson.Object:
		trailing := len(t.Members) > 0 && t.Members[len(t.Members)-1].Value.AfterExtra != nil
		seen := make(map[string]int, len(t.Members))
		kept := t.Members[:0]
		for _, m := range t.Members {
			name := memberName(&m)
			if i, ok := seen[name]; ok {
				kept[i].Value.Value = m.Value.Value
				continue
			}
			seen[name] = len(kept)
			kept = append(kept, m)
		}
		if len(kept) < len(t.Members) {
			t.Members = kept
			t.AfterExtra = setTrailingComma(&kept[len(kept)-1].Value, trailing, t.AfterExtra)
		}
		for i := range t.Members {
			collapseDuplicates(&t.Members[i].Value)
		}
	case *hujson.Array:
		for i := range t.Elements {
			collapseDuplicates(&t.Elements[i])
		}
	}
}
