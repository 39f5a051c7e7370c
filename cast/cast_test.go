package cast

import (
	"errors"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/yaroher/structname/names"
)

func mustName(t *testing.T, cs []string, d rune) *names.StringArrayName {
	t.Helper()
	n, err := names.NewStringArrayName(cs, names.WithDelimiter(d))
	if err != nil {
		t.Fatalf("NewStringArrayName(%v) error: %v", cs, err)
	}
	return n
}

func TestNilCasts(t *testing.T) {
	if got := ListValueFromName(nil); got != nil {
		t.Fatalf("ListValueFromName(nil) = %v, want nil", got)
	}
	if got := StructFromName(nil); got != nil {
		t.Fatalf("StructFromName(nil) = %v, want nil", got)
	}
	if got := StringValueFromName(nil); got != nil {
		t.Fatalf("StringValueFromName(nil) = %v, want nil", got)
	}
	if got, err := NameFromListValue(nil); got != nil || err != nil {
		t.Fatalf("NameFromListValue(nil) = %v, %v, want nil, nil", got, err)
	}
	if got, err := NameFromStruct(nil); got != nil || err != nil {
		t.Fatalf("NameFromStruct(nil) = %v, %v, want nil, nil", got, err)
	}
	if got, err := NameFromStringValue(nil); got != nil || err != nil {
		t.Fatalf("NameFromStringValue(nil) = %v, %v, want nil, nil", got, err)
	}
}

func TestStructCasts(t *testing.T) {
	in := mustName(t, []string{"a.b", `c\#d`, ""}, '#')

	s := StructFromName(in)
	want := map[string]any{
		"delimiter":  "#",
		"components": []any{"a.b", `c\#d`, ""},
	}
	if got := s.AsMap(); !reflect.DeepEqual(got, want) {
		t.Fatalf("StructFromName(%v).AsMap() = %v, want %v", in, got, want)
	}

	// survives a protojson round trip
	data, err := protojson.Marshal(s)
	if err != nil {
		t.Fatalf("protojson.Marshal error: %v", err)
	}
	var decoded structpb.Struct
	if err := protojson.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("protojson.Unmarshal error: %v", err)
	}

	out, err := NameFromStruct(&decoded)
	if err != nil {
		t.Fatalf("NameFromStruct error: %v", err)
	}
	if !out.IsEqual(in) {
		t.Fatalf("NameFromStruct = %v, want %v", out, in)
	}
}

func TestNameFromStructDefaults(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{"components": []any{"x", "y"}})
	if err != nil {
		t.Fatalf("NewStruct error: %v", err)
	}
	n, err := NameFromStruct(s)
	if err != nil {
		t.Fatalf("NameFromStruct error: %v", err)
	}
	if n.DelimiterCharacter() != names.DefaultDelimiter || n.AsString() != "x.y" {
		t.Fatalf("NameFromStruct = %q with %q, want x.y with .", n.AsString(), n.DelimiterCharacter())
	}

	empty, err := NameFromStruct(&structpb.Struct{})
	if err != nil || !empty.IsEmpty() {
		t.Fatalf("NameFromStruct(empty) = %v, %v, want empty name", empty, err)
	}
}

func TestNameFromStructInvalid(t *testing.T) {
	badDelimiter, _ := structpb.NewStruct(map[string]any{"delimiter": "##"})
	if _, err := NameFromStruct(badDelimiter); !errors.Is(err, names.ErrInvalidArgument) {
		t.Fatalf("NameFromStruct(bad delimiter) error = %v, want ErrInvalidArgument", err)
	}

	badComponent, _ := structpb.NewStruct(map[string]any{"components": []any{"a", float64(1)}})
	if _, err := NameFromStruct(badComponent); !errors.Is(err, names.ErrInvalidArgument) {
		t.Fatalf("NameFromStruct(number component) error = %v, want ErrInvalidArgument", err)
	}

	unmasked, _ := structpb.NewStruct(map[string]any{"components": []any{"a.b"}})
	if _, err := NameFromStruct(unmasked); !errors.Is(err, names.ErrInvalidArgument) {
		t.Fatalf("NameFromStruct(unmasked component) error = %v, want ErrInvalidArgument", err)
	}
}

func TestListValueCasts(t *testing.T) {
	in := mustName(t, []string{"oss", "cs", "fau", "de"}, '.')
	lv := ListValueFromName(in)
	if got := lv.AsSlice(); !reflect.DeepEqual(got, []any{"oss", "cs", "fau", "de"}) {
		t.Fatalf("ListValueFromName(%v) = %v", in, got)
	}
	out, err := NameFromListValue(lv)
	if err != nil {
		t.Fatalf("NameFromListValue error: %v", err)
	}
	if !out.IsEqual(in) {
		t.Fatalf("NameFromListValue = %v, want %v", out, in)
	}
}

func TestStringValueCasts(t *testing.T) {
	in := mustName(t, []string{"a.b", "c"}, '#')
	v := StringValueFromName(in)
	if v.GetValue() != `a\.b.c` {
		t.Fatalf("StringValueFromName(%v) = %q, want %q", in, v.GetValue(), `a\.b.c`)
	}
	out, err := NameFromStringValue(v)
	if err != nil {
		t.Fatalf("NameFromStringValue error: %v", err)
	}
	if out.NoComponents() != 2 || out.AsString() != "a.b.c" {
		t.Fatalf("NameFromStringValue = %d components %q", out.NoComponents(), out.AsString())
	}

	if _, err := NameFromStringValue(wrapperspb.String(`dangling\`)); !errors.Is(err, names.ErrFormat) {
		t.Fatalf("NameFromStringValue(dangling) error = %v, want ErrFormat", err)
	}
}
