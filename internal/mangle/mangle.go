// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mangle derives the C symbol names used by upb generated code
// from fully-qualified protobuf names.
package mangle

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// cIdentReplacer rewrites the characters that may appear in a protobuf
// full name or file path but are not valid in a C identifier.
var cIdentReplacer = strings.NewReplacer(".", "_", "/", "_", "-", "_")

// ToCIdent converts a dotted protobuf name or proto file path to a
// C identifier.
func ToCIdent(s string) string {
	return cIdentReplacer.Replace(s)
}

// MessageName returns the identifier base used for all symbols generated
// for the message with the given full name.
func MessageName(name protoreflect.FullName) string {
	return ToCIdent(string(name))
}

// MessageInit returns the symbol of the generated upb_MiniTable describing
// the message with the given full name.
func MessageInit(name protoreflect.FullName) string {
	return MessageName(name) + "_msg_init"
}

// EnumInit returns the symbol of the generated upb_MiniTableEnum describing
// the closed enum with the given full name.
func EnumInit(name protoreflect.FullName) string {
	return ToCIdent(string(name)) + "_enum_init"
}

// ExtensionLayout returns the symbol of the generated upb_MiniTableExtension
// describing the extension with the given full name.
func ExtensionLayout(name protoreflect.FullName) string {
	return ToCIdent(string(name)) + "_ext"
}
