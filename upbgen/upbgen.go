// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package upbgen provides helpers for emitting code that references the
// minitables generated by the upb compiler for each message.
package upbgen

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/reitowo/protoc-gen-upb/internal/mangle"
)

// MiniTableName returns the linker symbol of the upb_MiniTable generated
// for m.
func MiniTableName(m protoreflect.MessageDescriptor) string {
	return mangle.MessageInit(m.FullName())
}

// MiniTableFieldIndex returns the position of fd within the fields array
// of its containing message's upb_MiniTable. The array is sorted by field
// number, regardless of declaration order.
//
// fd must belong to a message; a field with no containing message is a
// malformed descriptor graph and panics.
func MiniTableFieldIndex(fd protoreflect.FieldDescriptor) uint32 {
	parent := fd.ContainingMessage()
	if parent == nil {
		panic(fmt.Sprintf("field %v has no containing message", fd.FullName()))
	}

	// TODO: read the index out of the generated layout instead of
	// independently matching its sort order here.
	var lower uint32
	fields := parent.Fields()
	for i := 0; i < fields.Len(); i++ {
		if fields.Get(i).Number() < fd.Number() {
			lower++
		}
	}
	return lower
}
