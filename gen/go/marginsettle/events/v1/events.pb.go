// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.0
// 	protoc        (unknown)
// source: marginsettle/events/v1/events.proto

package eventsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// EventType discriminates inbound event payloads.
type EventType int32

const (
	EventType_EVENT_TYPE_UNSPECIFIED          EventType = 0
	EventType_EVENT_TYPE_DEPOSIT_CONFIRMED    EventType = 1
	EventType_EVENT_TYPE_WITHDRAWAL_REQUESTED EventType = 2
	EventType_EVENT_TYPE_ORACLE_PRICE_UPDATE  EventType = 3
	EventType_EVENT_TYPE_FUNDING_RATE_UPDATE  EventType = 4
	EventType_EVENT_TYPE_POSITION_OPENED      EventType = 5
	EventType_EVENT_TYPE_SETTLEMENT_REQUEST   EventType = 6
)

// Enum value maps for EventType.
var (
	EventType_name = map[int32]string{
		0: "EVENT_TYPE_UNSPECIFIED",
		1: "EVENT_TYPE_DEPOSIT_CONFIRMED",
		2: "EVENT_TYPE_WITHDRAWAL_REQUESTED",
		3: "EVENT_TYPE_ORACLE_PRICE_UPDATE",
		4: "EVENT_TYPE_FUNDING_RATE_UPDATE",
		5: "EVENT_TYPE_POSITION_OPENED",
		6: "EVENT_TYPE_SETTLEMENT_REQUEST",
	}
	EventType_value = map[string]int32{
		"EVENT_TYPE_UNSPECIFIED":          0,
		"EVENT_TYPE_DEPOSIT_CONFIRMED":    1,
		"EVENT_TYPE_WITHDRAWAL_REQUESTED": 2,
		"EVENT_TYPE_ORACLE_PRICE_UPDATE":  3,
		"EVENT_TYPE_FUNDING_RATE_UPDATE":  4,
		"EVENT_TYPE_POSITION_OPENED":      5,
		"EVENT_TYPE_SETTLEMENT_REQUEST":   6,
	}
)

func (x EventType) Enum() *EventType {
	p := new(EventType)
	*p = x
	return p
}

func (x EventType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EventType) Descriptor() protoreflect.EnumDescriptor {
	return file_marginsettle_events_v1_events_proto_enumTypes[0].Descriptor()
}

func (EventType) Type() protoreflect.EnumType {
	return &file_marginsettle_events_v1_events_proto_enumTypes[0]
}

func (x EventType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EventType.Descriptor instead.
func (EventType) EnumDescriptor() ([]byte, []int) {
	return file_marginsettle_events_v1_events_proto_rawDescGZIP(), []int{0}
}

// EventSubmission carries a JSON event payload plus its type tag. The
// payload uses the same snake_case wire format as the NATS subjects.
type EventSubmission struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EventType     EventType              `protobuf:"varint,1,opt,name=event_type,json=eventType,proto3,enum=marginsettle.events.v1.EventType" json:"event_type,omitempty"`
	Payload       []byte                 `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EventSubmission) Reset() {
	*x = EventSubmission{}
	mi := &file_marginsettle_events_v1_events_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventSubmission) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventSubmission) ProtoMessage() {}

func (x *EventSubmission) ProtoReflect() protoreflect.Message {
	mi := &file_marginsettle_events_v1_events_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventSubmission.ProtoReflect.Descriptor instead.
func (*EventSubmission) Descriptor() ([]byte, []int) {
	return file_marginsettle_events_v1_events_proto_rawDescGZIP(), []int{0}
}

func (x *EventSubmission) GetEventType() EventType {
	if x != nil {
		return x.EventType
	}
	return EventType_EVENT_TYPE_UNSPECIFIED
}

func (x *EventSubmission) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

var File_marginsettle_events_v1_events_proto protoreflect.FileDescriptor

var file_marginsettle_events_v1_events_proto_rawDesc = []byte{
	0x0a, 0x23, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x73, 0x65, 0x74, 0x74, 0x6c, 0x65, 0x2f, 0x65,
	0x76, 0x65, 0x6e, 0x74, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x16, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x73, 0x65, 0x74,
	0x74, 0x6c, 0x65, 0x2e, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x22, 0x6d, 0x0a,
	0x0f, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x73, 0x73, 0x69, 0x6f, 0x6e,
	0x12, 0x40, 0x0a, 0x0a, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x0e, 0x32, 0x21, 0x2e, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x73, 0x65, 0x74,
	0x74, 0x6c, 0x65, 0x2e, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x76,
	0x65, 0x6e, 0x74, 0x54, 0x79, 0x70, 0x65, 0x52, 0x09, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x54, 0x79,
	0x70, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x61, 0x79, 0x6c, 0x6f, 0x61, 0x64, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x0c, 0x52, 0x07, 0x70, 0x61, 0x79, 0x6c, 0x6f, 0x61, 0x64, 0x2a, 0xf9, 0x01, 0x0a,
	0x09, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1a, 0x0a, 0x16, 0x45, 0x56,
	0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49,
	0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x20, 0x0a, 0x1c, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f,
	0x54, 0x59, 0x50, 0x45, 0x5f, 0x44, 0x45, 0x50, 0x4f, 0x53, 0x49, 0x54, 0x5f, 0x43, 0x4f, 0x4e,
	0x46, 0x49, 0x52, 0x4d, 0x45, 0x44, 0x10, 0x01, 0x12, 0x23, 0x0a, 0x1f, 0x45, 0x56, 0x45, 0x4e,
	0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x57, 0x49, 0x54, 0x48, 0x44, 0x52, 0x41, 0x57, 0x41,
	0x4c, 0x5f, 0x52, 0x45, 0x51, 0x55, 0x45, 0x53, 0x54, 0x45, 0x44, 0x10, 0x02, 0x12, 0x22, 0x0a,
	0x1e, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x4f, 0x52, 0x41, 0x43,
	0x4c, 0x45, 0x5f, 0x50, 0x52, 0x49, 0x43, 0x45, 0x5f, 0x55, 0x50, 0x44, 0x41, 0x54, 0x45, 0x10,
	0x03, 0x12, 0x22, 0x0a, 0x1e, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f,
	0x46, 0x55, 0x4e, 0x44, 0x49, 0x4e, 0x47, 0x5f, 0x52, 0x41, 0x54, 0x45, 0x5f, 0x55, 0x50, 0x44,
	0x41, 0x54, 0x45, 0x10, 0x04, 0x12, 0x1e, 0x0a, 0x1a, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54,
	0x59, 0x50, 0x45, 0x5f, 0x50, 0x4f, 0x53, 0x49, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x4f, 0x50, 0x45,
	0x4e, 0x45, 0x44, 0x10, 0x05, 0x12, 0x21, 0x0a, 0x1d, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54,
	0x59, 0x50, 0x45, 0x5f, 0x53, 0x45, 0x54, 0x54, 0x4c, 0x45, 0x4d, 0x45, 0x4e, 0x54, 0x5f, 0x52,
	0x45, 0x51, 0x55, 0x45, 0x53, 0x54, 0x10, 0x06, 0x42, 0x35, 0x5a, 0x33, 0x4d, 0x61, 0x72, 0x67,
	0x69, 0x6e, 0x53, 0x65, 0x74, 0x74, 0x6c, 0x65, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f,
	0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x73, 0x65, 0x74, 0x74, 0x6c, 0x65, 0x2f, 0x65, 0x76, 0x65,
	0x6e, 0x74, 0x73, 0x2f, 0x76, 0x31, 0x3b, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x76, 0x31, 0x62,
	0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_marginsettle_events_v1_events_proto_rawDescOnce sync.Once
	file_marginsettle_events_v1_events_proto_rawDescData = file_marginsettle_events_v1_events_proto_rawDesc
)

func file_marginsettle_events_v1_events_proto_rawDescGZIP() []byte {
	file_marginsettle_events_v1_events_proto_rawDescOnce.Do(func() {
		file_marginsettle_events_v1_events_proto_rawDescData = protoimpl.X.CompressGZIP(file_marginsettle_events_v1_events_proto_rawDescData)
	})
	return file_marginsettle_events_v1_events_proto_rawDescData
}

var file_marginsettle_events_v1_events_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_marginsettle_events_v1_events_proto_msgTypes = make([]protoimpl.MessageInfo, 1)
var file_marginsettle_events_v1_events_proto_goTypes = []any{
	(EventType)(0),          // 0: marginsettle.events.v1.EventType
	(*EventSubmission)(nil), // 1: marginsettle.events.v1.EventSubmission
}
var file_marginsettle_events_v1_events_proto_depIdxs = []int32{
	0, // 0: marginsettle.events.v1.EventSubmission.event_type:type_name -> marginsettle.events.v1.EventType
	1, // [1:1] is the sub-list for method output_type
	1, // [1:1] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_marginsettle_events_v1_events_proto_init() }
func file_marginsettle_events_v1_events_proto_init() {
	if File_marginsettle_events_v1_events_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_marginsettle_events_v1_events_proto_rawDesc,
			NumEnums:      1,
			NumMessages:   1,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_marginsettle_events_v1_events_proto_goTypes,
		DependencyIndexes: file_marginsettle_events_v1_events_proto_depIdxs,
		EnumInfos:         file_marginsettle_events_v1_events_proto_enumTypes,
		MessageInfos:      file_marginsettle_events_v1_events_proto_msgTypes,
	}.Build()
	File_marginsettle_events_v1_events_proto = out.File
	file_marginsettle_events_v1_events_proto_rawDesc = nil
	file_marginsettle_events_v1_events_proto_goTypes = nil
	file_marginsettle_events_v1_events_proto_depIdxs = nil
}
