// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"reflect"
)

// PoolTag - a pool's field name and prefix
type PoolTag struct {
	Name   string
	Prefix string
}

// PoolTags - list all pools in declaration order
func PoolTags() []PoolTag {

	// this will be a struct type
	poolType := reflect.TypeOf(Pools{})

	tags := make([]PoolTag, 0, poolType.NumField())
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		tags = append(tags, PoolTag{
			Name:   fieldInfo.Name,
			Prefix: fieldInfo.Tag.Get("prefix"),
		})
	}
	return tags
}

// PoolByPrefix - locate a pool from its prefix tag
func (d *Database) PoolByPrefix(prefix string) (*PoolHandle, string, bool) {

	poolType := reflect.TypeOf(d.Pool)

	// read-only access
	poolValue := reflect.ValueOf(d.Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		if prefix == fieldInfo.Tag.Get("prefix") {
			p, ok := poolValue.Field(i).Interface().(*PoolHandle)
			return p, fieldInfo.Name, ok && nil != p
		}
	}
	return nil, "", false
}
