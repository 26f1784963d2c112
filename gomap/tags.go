package gomap

import (
	"reflect"
	"strings"
	"sync"
)

const tagName = "qt"

type fieldInfo struct {
	name      string
	index     []int
	omitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// structFields gives the mapped fields of struct type ty in declaration
// order.  Fields of embedded structs without a tag are promoted.
func structFields(ty reflect.Type) []fieldInfo {
	if v, ok := fieldCache.Load(ty); ok {
		return v.([]fieldInfo)
	}
	var res []fieldInfo
	for i := range ty.NumField() {
		f := ty.Field(i)
		tag, hasTag := f.Tag.Lookup(tagName)
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if f.Anonymous && !hasTag {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				for _, sub := range structFields(ft) {
					sub.index = append([]int{i}, sub.index...)
					res = append(res, sub)
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		res = append(res, fieldInfo{
			name:      name,
			index:     []int{i},
			omitEmpty: hasOpt(opts, "omitempty"),
		})
	}
	v, _ := fieldCache.LoadOrStore(ty, res)
	return v.([]fieldInfo)
}

func hasOpt(opts, opt string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == opt {
			return true
		}
	}
	return false
}

// lookupField finds the field for key, preferring an exact match.
func lookupField(fields []fieldInfo, key string) (fieldInfo, bool) {
	for _, f := range fields {
		if f.name == key {
			return f, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.name, key) {
			return f, true
		}
	}
	return fieldInfo{}, false
}
