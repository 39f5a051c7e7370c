// Package cast converts names to and from protobuf well-known types.
package cast

import (
	"fmt"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/yaroher/structname/names"
)

const (
	delimiterField  = "delimiter"
	componentsField = "components"
)

// ListValueFromName returns the masked components of n as string values.
func ListValueFromName(n names.Name) *structpb.ListValue {
	if n == nil {
		return nil
	}
	return &structpb.ListValue{
		Values: lo.Map(names.ComponentsOf(n), func(c string, _ int) *structpb.Value {
			return structpb.NewStringValue(c)
		}),
	}
}

// NameFromListValue builds a name from string values holding components
// masked for the delimiter selected by opts.
func NameFromListValue(v *structpb.ListValue, opts ...names.Option) (*names.StringArrayName, error) {
	if v == nil {
		return nil, nil
	}
	cs := make([]string, len(v.GetValues()))
	for i, val := range v.GetValues() {
		s, ok := val.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, &names.InvalidArgumentError{
				Op:     "name_from_list_value",
				Reason: fmt.Sprintf("component %d is %T, want string", i, val.GetKind()),
			}
		}
		cs[i] = s.StringValue
	}
	return names.NewStringArrayName(cs, opts...)
}

// StructFromName returns {"delimiter": …, "components": […]}.
func StructFromName(n names.Name) *structpb.Struct {
	if n == nil {
		return nil
	}
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			delimiterField:  structpb.NewStringValue(string(n.DelimiterCharacter())),
			componentsField: structpb.NewListValue(ListValueFromName(n)),
		},
	}
}

// NameFromStruct is the inverse of StructFromName. A missing delimiter means
// the default one.
func NameFromStruct(s *structpb.Struct) (*names.StringArrayName, error) {
	if s == nil {
		return nil, nil
	}
	var opts []names.Option
	if v, ok := s.GetFields()[delimiterField]; ok {
		d, err := names.DelimiterFromString(v.GetStringValue())
		if err != nil {
			return nil, err
		}
		opts = append(opts, names.WithDelimiter(d))
	}
	list := s.GetFields()[componentsField].GetListValue()
	if list == nil {
		list = &structpb.ListValue{}
	}
	return NameFromListValue(list, opts...)
}

// StringValueFromName wraps the data string of n.
func StringValueFromName(n names.Name) *wrapperspb.StringValue {
	if n == nil {
		return nil
	}
	return wrapperspb.String(n.AsDataString())
}

// NameFromStringValue parses a wrapped data string.
func NameFromStringValue(v *wrapperspb.StringValue) (*names.StringName, error) {
	if v == nil {
		return nil, nil
	}
	return names.NewStringName(v.GetValue())
}
