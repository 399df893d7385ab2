package cbind

/*
#include <stdlib.h>
#include <cJSON.h>
*/
import "C"

import "unsafe"

// Node is an opaque handle to a node in the cJSON value tree. The zero
// value (nil) means "no node".
type Node *C.cJSON

// cJSON type tags, re-exported for the root package's Kind mapping.
const (
	TypeInvalid = int(C.cJSON_Invalid)
	TypeFalse   = int(C.cJSON_False)
	TypeTrue    = int(C.cJSON_True)
	TypeNull    = int(C.cJSON_NULL)
	TypeNumber  = int(C.cJSON_Number)
	TypeString  = int(C.cJSON_String)
	TypeArray   = int(C.cJSON_Array)
	TypeObject  = int(C.cJSON_Object)
	TypeRaw     = int(C.cJSON_Raw)

	// Flag bits stored alongside the tag.
	flagIsReference   = int(C.cJSON_IsReference)
	flagStringIsConst = int(C.cJSON_StringIsConst)
)

// Library limits and version, straight from the header.
const (
	VersionMajor  = int(C.CJSON_VERSION_MAJOR)
	VersionMinor  = int(C.CJSON_VERSION_MINOR)
	VersionPatch  = int(C.CJSON_VERSION_PATCH)
	NestingLimit  = int(C.CJSON_NESTING_LIMIT)
	CircularLimit = int(C.CJSON_CIRCULAR_LIMIT)
)

// Version returns the runtime library version string.
func Version() string { return C.GoString(C.cJSON_Version()) }

// ---- construction ----

func CreateNull() Node   { return Node(C.cJSON_CreateNull()) }
func CreateArray() Node  { return Node(C.cJSON_CreateArray()) }
func CreateObject() Node { return Node(C.cJSON_CreateObject()) }

func CreateBool(b bool) Node { return Node(C.cJSON_CreateBool(cbool(b))) }

func CreateNumber(f float64) Node { return Node(C.cJSON_CreateNumber(C.double(f))) }

func CreateString(s string) Node {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return Node(C.cJSON_CreateString(cs))
}

func CreateRaw(s string) Node {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return Node(C.cJSON_CreateRaw(cs))
}

// Delete releases the node and its entire subtree. The handle must be a
// detached root; deleting an attached child corrupts the parent.
func Delete(n Node) { C.cJSON_Delete((*C.cJSON)(n)) }

// ---- parse / print ----

// Parse parses data as JSON. On failure it returns a nil Node and the byte
// offset cJSON stopped at (from the return_parse_end pointer). data need
// not be NUL-terminated.
func Parse(data []byte) (Node, int64) {
	if len(data) == 0 {
		return nil, 0
	}
	var end *C.char
	p := (*C.char)(unsafe.Pointer(&data[0]))
	n := C.cJSON_ParseWithLengthOpts(p, C.size_t(len(data)), &end, 0)
	if n == nil {
		off := int64(uintptr(unsafe.Pointer(end)) - uintptr(unsafe.Pointer(p)))
		if off < 0 || off > int64(len(data)) {
			off = 0
		}
		return nil, off
	}
	return Node(n), 0
}

// Print renders the tree. fmt selects the formatted (indented) printer.
// ok is false when cJSON could not allocate the output buffer.
func Print(n Node, format bool) (string, bool) {
	var out *C.char
	if format {
		out = C.cJSON_Print((*C.cJSON)(n))
	} else {
		out = C.cJSON_PrintUnformatted((*C.cJSON)(n))
	}
	if out == nil {
		return "", false
	}
	s := C.GoString(out)
	C.cJSON_free(unsafe.Pointer(out))
	return s, true
}

// PrintBuffered renders the tree using a preallocated guess of the output
// size, avoiding cJSON's double-print reallocation.
func PrintBuffered(n Node, prebuffer int, format bool) (string, bool) {
	out := C.cJSON_PrintBuffered((*C.cJSON)(n), C.int(prebuffer), cbool(format))
	if out == nil {
		return "", false
	}
	s := C.GoString(out)
	C.cJSON_free(unsafe.Pointer(out))
	return s, true
}

// Minify strips whitespace and comments from JSON text in place, on a C
// copy of the input.
func Minify(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	cs := C.CString(string(data))
	defer C.free(unsafe.Pointer(cs))
	C.cJSON_Minify(cs)
	return []byte(C.GoString(cs))
}

// ---- inspection ----

// TypeOf returns the node's type tag with internal flag bits masked off.
func TypeOf(n Node) int {
	return int(n._type) &^ (flagIsReference | flagStringIsConst)
}

func IsTrue(n Node) bool { return C.cJSON_IsTrue((*C.cJSON)(n)) != 0 }

func NumberValue(n Node) float64 { return float64(C.cJSON_GetNumberValue((*C.cJSON)(n))) }

func StringValue(n Node) string {
	cs := C.cJSON_GetStringValue((*C.cJSON)(n))
	if cs == nil {
		return ""
	}
	return C.GoString(cs)
}

// KeyOf returns the member key under which n is attached to its parent
// object, or "" for array elements and roots.
func KeyOf(n Node) string {
	if n == nil || n.string == nil {
		return ""
	}
	return C.GoString(n.string)
}

func FirstChild(n Node) Node { return Node(n.child) }
func NextSibling(n Node) Node {
	return Node(n.next)
}

// ---- containers ----

func ArraySize(n Node) int { return int(C.cJSON_GetArraySize((*C.cJSON)(n))) }

func ArrayItem(n Node, i int) Node {
	return Node(C.cJSON_GetArrayItem((*C.cJSON)(n), C.int(i)))
}

func ObjectItem(n Node, key string) Node {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	return Node(C.cJSON_GetObjectItemCaseSensitive((*C.cJSON)(n), ck))
}

func HasObjectItem(n Node, key string) bool {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	return C.cJSON_HasObjectItem((*C.cJSON)(n), ck) != 0
}

func AddItemToArray(arr, item Node) bool {
	return C.cJSON_AddItemToArray((*C.cJSON)(arr), (*C.cJSON)(item)) != 0
}

func InsertItemInArray(arr Node, which int, item Node) bool {
	return C.cJSON_InsertItemInArray((*C.cJSON)(arr), C.int(which), (*C.cJSON)(item)) != 0
}

func AddItemToObject(obj Node, key string, item Node) bool {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	return C.cJSON_AddItemToObject((*C.cJSON)(obj), ck, (*C.cJSON)(item)) != 0
}

func ReplaceItemInObject(obj Node, key string, item Node) bool {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	return C.cJSON_ReplaceItemInObjectCaseSensitive((*C.cJSON)(obj), ck, (*C.cJSON)(item)) != 0
}

func DetachItemFromArray(arr Node, which int) Node {
	return Node(C.cJSON_DetachItemFromArray((*C.cJSON)(arr), C.int(which)))
}

func DeleteItemFromArray(arr Node, which int) {
	C.cJSON_DeleteItemFromArray((*C.cJSON)(arr), C.int(which))
}

func DetachItemFromObject(obj Node, key string) Node {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	return Node(C.cJSON_DetachItemFromObjectCaseSensitive((*C.cJSON)(obj), ck))
}

func DeleteItemFromObject(obj Node, key string) {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	C.cJSON_DeleteItemFromObjectCaseSensitive((*C.cJSON)(obj), ck)
}

// ---- whole-tree helpers ----

func Duplicate(n Node, recurse bool) Node {
	return Node(C.cJSON_Duplicate((*C.cJSON)(n), cbool(recurse)))
}

func Compare(a, b Node, caseSensitive bool) bool {
	return C.cJSON_Compare((*C.cJSON)(a), (*C.cJSON)(b), cbool(caseSensitive)) != 0
}

func cbool(b bool) C.cJSON_bool {
	if b {
		return 1
	}
	return 0
}
