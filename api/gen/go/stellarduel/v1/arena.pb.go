// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: stellarduel/v1/arena.proto

package stellarduelv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Arena describes one playable arena.
type Arena struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Stable catalog position, 1-based.
	Id int32 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	// Stable lookup key, e.g. "nebula-rift".
	Key         string `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Name        string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Subtitle    string `protobuf:"bytes,4,opt,name=subtitle,proto3" json:"subtitle,omitempty"`
	Description string `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	// Hex colors for clients that render the arena.
	BackgroundColor      string `protobuf:"bytes,6,opt,name=background_color,json=backgroundColor,proto3" json:"background_color,omitempty"`
	AccentColor          string `protobuf:"bytes,7,opt,name=accent_color,json=accentColor,proto3" json:"accent_color,omitempty"`
	SecondaryAccentColor string `protobuf:"bytes,8,opt,name=secondary_accent_color,json=secondaryAccentColor,proto3" json:"secondary_accent_color,omitempty"`
	// Gravity anomaly kinds this arena can spawn.
	AnomalyKinds []string `protobuf:"bytes,9,rep,name=anomaly_kinds,json=anomalyKinds,proto3" json:"anomaly_kinds,omitempty"`
	MaxAnomalies int32    `protobuf:"varint,10,opt,name=max_anomalies,json=maxAnomalies,proto3" json:"max_anomalies,omitempty"`
	MaxAsteroids int32    `protobuf:"varint,11,opt,name=max_asteroids,json=maxAsteroids,proto3" json:"max_asteroids,omitempty"`
	// Hazard features present in the arena.
	Hazards       []string `protobuf:"bytes,12,rep,name=hazards,proto3" json:"hazards,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Arena) Reset() {
	*x = Arena{}
	mi := &file_stellarduel_v1_arena_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Arena) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Arena) ProtoMessage() {}

func (x *Arena) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_arena_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Arena.ProtoReflect.Descriptor instead.
func (*Arena) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_arena_proto_rawDescGZIP(), []int{0}
}

func (x *Arena) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Arena) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *Arena) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Arena) GetSubtitle() string {
	if x != nil {
		return x.Subtitle
	}
	return ""
}

func (x *Arena) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Arena) GetBackgroundColor() string {
	if x != nil {
		return x.BackgroundColor
	}
	return ""
}

func (x *Arena) GetAccentColor() string {
	if x != nil {
		return x.AccentColor
	}
	return ""
}

func (x *Arena) GetSecondaryAccentColor() string {
	if x != nil {
		return x.SecondaryAccentColor
	}
	return ""
}

func (x *Arena) GetAnomalyKinds() []string {
	if x != nil {
		return x.AnomalyKinds
	}
	return nil
}

func (x *Arena) GetMaxAnomalies() int32 {
	if x != nil {
		return x.MaxAnomalies
	}
	return 0
}

func (x *Arena) GetMaxAsteroids() int32 {
	if x != nil {
		return x.MaxAsteroids
	}
	return 0
}

func (x *Arena) GetHazards() []string {
	if x != nil {
		return x.Hazards
	}
	return nil
}

type ListArenasRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArenasRequest) Reset() {
	*x = ListArenasRequest{}
	mi := &file_stellarduel_v1_arena_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArenasRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArenasRequest) ProtoMessage() {}

func (x *ListArenasRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_arena_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArenasRequest.ProtoReflect.Descriptor instead.
func (*ListArenasRequest) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_arena_proto_rawDescGZIP(), []int{1}
}

type ListArenasResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Arenas        []*Arena               `protobuf:"bytes,1,rep,name=arenas,proto3" json:"arenas,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArenasResponse) Reset() {
	*x = ListArenasResponse{}
	mi := &file_stellarduel_v1_arena_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArenasResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArenasResponse) ProtoMessage() {}

func (x *ListArenasResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_arena_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArenasResponse.ProtoReflect.Descriptor instead.
func (*ListArenasResponse) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_arena_proto_rawDescGZIP(), []int{2}
}

func (x *ListArenasResponse) GetArenas() []*Arena {
	if x != nil {
		return x.Arenas
	}
	return nil
}

type GetArenaRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetArenaRequest) Reset() {
	*x = GetArenaRequest{}
	mi := &file_stellarduel_v1_arena_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArenaRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArenaRequest) ProtoMessage() {}

func (x *GetArenaRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_arena_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetArenaRequest.ProtoReflect.Descriptor instead.
func (*GetArenaRequest) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_arena_proto_rawDescGZIP(), []int{3}
}

func (x *GetArenaRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

type GetArenaResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Arena         *Arena                 `protobuf:"bytes,1,opt,name=arena,proto3" json:"arena,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetArenaResponse) Reset() {
	*x = GetArenaResponse{}
	mi := &file_stellarduel_v1_arena_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArenaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArenaResponse) ProtoMessage() {}

func (x *GetArenaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_arena_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetArenaResponse.ProtoReflect.Descriptor instead.
func (*GetArenaResponse) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_arena_proto_rawDescGZIP(), []int{4}
}

func (x *GetArenaResponse) GetArena() *Arena {
	if x != nil {
		return x.Arena
	}
	return nil
}

var File_stellarduel_v1_arena_proto protoreflect.FileDescriptor

const file_stellarduel_v1_arena_proto_rawDesc = "" +
	"\n" +
	"\x1astellarduel/v1/arena.proto\x12\x0estellarduel.v1\"\x88\x03\n" +
	"\x05Arena\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x10\n" +
	"\x03key\x18\x02 \x01(\tR\x03key\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1a\n" +
	"\bsubtitle\x18\x04 \x01(\tR\bsubtitle\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12)\n" +
	"\x10background_color\x18\x06 \x01(\tR\x0fbackgroundColor\x12!\n" +
	"\faccent_color\x18\a \x01(\tR\vaccentColor\x124\n" +
	"\x16secondary_accent_color\x18\b \x01(\tR\x14secondaryAccentColor\x12#\n" +
	"\ranomaly_kinds\x18\t \x03(\tR\fanomalyKinds\x12#\n" +
	"\rmax_anomalies\x18\n" +
	" \x01(\x05R\fmaxAnomalies\x12#\n" +
	"\rmax_asteroids\x18\v \x01(\x05R\fmaxAsteroids\x12\x18\n" +
	"\ahazards\x18\f \x03(\tR\ahazards\"\x13\n" +
	"\x11ListArenasRequest\"C\n" +
	"\x12ListArenasResponse\x12-\n" +
	"\x06arenas\x18\x01 \x03(\v2\x15.stellarduel.v1.ArenaR\x06arenas\"#\n" +
	"\x0fGetArenaRequest\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\"?\n" +
	"\x10GetArenaResponse\x12+\n" +
	"\x05arena\x18\x01 \x01(\v2\x15.stellarduel.v1.ArenaR\x05arena2\xb2\x01\n" +
	"\fArenaService\x12S\n" +
	"\n" +
	"ListArenas\x12!.stellarduel.v1.ListArenasRequest\x1a\".stellarduel.v1.ListArenasResponse\x12M\n" +
	"\bGetArena\x12\x1f.stellarduel.v1.GetArenaRequest\x1a .stellarduel.v1.GetArenaResponseBMZKgithub.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1;stellarduelv1b\x06proto3"

var (
	file_stellarduel_v1_arena_proto_rawDescOnce sync.Once
	file_stellarduel_v1_arena_proto_rawDescData []byte
)

func file_stellarduel_v1_arena_proto_rawDescGZIP() []byte {
	file_stellarduel_v1_arena_proto_rawDescOnce.Do(func() {
		file_stellarduel_v1_arena_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_stellarduel_v1_arena_proto_rawDesc), len(file_stellarduel_v1_arena_proto_rawDesc)))
	})
	return file_stellarduel_v1_arena_proto_rawDescData
}

var file_stellarduel_v1_arena_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_stellarduel_v1_arena_proto_goTypes = []any{
	(*Arena)(nil),              // 0: stellarduel.v1.Arena
	(*ListArenasRequest)(nil),  // 1: stellarduel.v1.ListArenasRequest
	(*ListArenasResponse)(nil), // 2: stellarduel.v1.ListArenasResponse
	(*GetArenaRequest)(nil),    // 3: stellarduel.v1.GetArenaRequest
	(*GetArenaResponse)(nil),   // 4: stellarduel.v1.GetArenaResponse
}
var file_stellarduel_v1_arena_proto_depIdxs = []int32{
	0, // 0: stellarduel.v1.ListArenasResponse.arenas:type_name -> stellarduel.v1.Arena
	0, // 1: stellarduel.v1.GetArenaResponse.arena:type_name -> stellarduel.v1.Arena
	1, // 2: stellarduel.v1.ArenaService.ListArenas:input_type -> stellarduel.v1.ListArenasRequest
	3, // 3: stellarduel.v1.ArenaService.GetArena:input_type -> stellarduel.v1.GetArenaRequest
	2, // 4: stellarduel.v1.ArenaService.ListArenas:output_type -> stellarduel.v1.ListArenasResponse
	4, // 5: stellarduel.v1.ArenaService.GetArena:output_type -> stellarduel.v1.GetArenaResponse
	4, // [4:6] is the sub-list for method output_type
	2, // [2:4] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_stellarduel_v1_arena_proto_init() }
func file_stellarduel_v1_arena_proto_init() {
	if File_stellarduel_v1_arena_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_stellarduel_v1_arena_proto_rawDesc), len(file_stellarduel_v1_arena_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_stellarduel_v1_arena_proto_goTypes,
		DependencyIndexes: file_stellarduel_v1_arena_proto_depIdxs,
		MessageInfos:      file_stellarduel_v1_arena_proto_msgTypes,
	}.Build()
	File_stellarduel_v1_arena_proto = out.File
	file_stellarduel_v1_arena_proto_goTypes = nil
	file_stellarduel_v1_arena_proto_depIdxs = nil
}
