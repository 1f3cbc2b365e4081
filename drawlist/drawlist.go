// SPDX-License-Identifier: GPL-2.0-or-later

// Package drawlist hands painter's order traversals to renderers outside of
// this process. A list is encoded as a google.protobuf.Struct:
//
//	{
//	  "tree": "<uuid of the build>",
//	  "view": [x, y],
//	  "segments": [{"name": "A", "start": [x, y], "end": [x, y], "normal": [x, y]}, ...]
//	}
package drawlist

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"bspview/bsp"
	"bspview/math/vec"
)

type Item struct {
	Name       string
	Start, End vec.Vec2
	Normal     vec.Vec2
}

// List is one ordered traversal, farthest segment first.
type List struct {
	Tree  uuid.UUID
	View  vec.Vec2
	Items []Item
}

// New returns the back to front order of t as seen from view.
func New(t *bsp.Tree, view vec.Vec2) *List {
	l := &List{
		Tree: t.ID(),
		View: view,
	}
	for s := range t.Ordered(view) {
		l.Items = append(l.Items, Item{
			Name:   s.Name(),
			Start:  s.Start(),
			End:    s.End(),
			Normal: s.Normal(),
		})
	}
	return l
}

func vecValue(v vec.Vec2) *structpb.Value {
	a := v.Array()
	l := &structpb.ListValue{Values: make([]*structpb.Value, len(a))}
	for i, c := range a {
		l.Values[i] = structpb.NewNumberValue(float64(c))
	}
	return structpb.NewListValue(l)
}

// Message converts l into its protobuf form.
func (l *List) Message() *structpb.Struct {
	segs := make([]*structpb.Value, len(l.Items))
	for i, it := range l.Items {
		segs[i] = structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"name":   structpb.NewStringValue(it.Name),
				"start":  vecValue(it.Start),
				"end":    vecValue(it.End),
				"normal": vecValue(it.Normal),
			},
		})
	}
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"tree":     structpb.NewStringValue(l.Tree.String()),
			"view":     vecValue(l.View),
			"segments": structpb.NewListValue(&structpb.ListValue{Values: segs}),
		},
	}
}

// Marshal returns the binary protobuf encoding of l.
func (l *List) Marshal() ([]byte, error) {
	b, err := proto.Marshal(l.Message())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode draw list")
	}
	return b, nil
}

// MarshalJSON returns the protobuf JSON encoding of l.
func (l *List) MarshalJSON() ([]byte, error) {
	b, err := protojson.Marshal(l.Message())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode draw list")
	}
	return b, nil
}

// Decode parses the binary encoding written by Marshal.
func Decode(b []byte) (*List, error) {
	m := &structpb.Struct{}
	if err := proto.Unmarshal(b, m); err != nil {
		return nil, errors.Wrap(err, "failed to decode draw list")
	}
	return FromMessage(m)
}

// DecodeJSON parses the encoding written by MarshalJSON.
func DecodeJSON(b []byte) (*List, error) {
	m := &structpb.Struct{}
	if err := protojson.Unmarshal(b, m); err != nil {
		return nil, errors.Wrap(err, "failed to decode draw list")
	}
	return FromMessage(m)
}

func toVec(v *structpb.Value) (vec.Vec2, error) {
	l := v.GetListValue().GetValues()
	if len(l) != 2 {
		return vec.Vec2{}, errors.Errorf("vector with %d components", len(l))
	}
	var a [2]float32
	for i, c := range l {
		a[i] = float32(c.GetNumberValue())
	}
	return vec.VFromA(a), nil
}

// FromMessage converts the protobuf form back into a List.
func FromMessage(m *structpb.Struct) (*List, error) {
	f := m.GetFields()
	id, err := uuid.Parse(f["tree"].GetStringValue())
	if err != nil {
		return nil, errors.Wrap(err, "bad tree id")
	}
	view, err := toVec(f["view"])
	if err != nil {
		return nil, errors.Wrap(err, "bad view")
	}
	l := &List{Tree: id, View: view}
	for i, v := range f["segments"].GetListValue().GetValues() {
		sf := v.GetStructValue().GetFields()
		it := Item{Name: sf["name"].GetStringValue()}
		for _, c := range []struct {
			key string
			dst *vec.Vec2
		}{
			{"start", &it.Start},
			{"end", &it.End},
			{"normal", &it.Normal},
		} {
			if *c.dst, err = toVec(sf[c.key]); err != nil {
				return nil, errors.Wrapf(err, "segment %d: bad %s", i, c.key)
			}
		}
		l.Items = append(l.Items, it)
	}
	return l, nil
}
