// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.0
// 	protoc        (unknown)
// source: marginsettle/ingest/v1/ingest.proto

package ingestv1

import (
	v1 "MarginSettle/gen/go/marginsettle/events/v1"
	_ "google.golang.org/genproto/googleapis/api/annotations"
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

type SubmitEventRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Event         *v1.EventSubmission    `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitEventRequest) Reset() {
	*x = SubmitEventRequest{}
	mi := &file_marginsettle_ingest_v1_ingest_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitEventRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitEventRequest) ProtoMessage() {}

func (x *SubmitEventRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marginsettle_ingest_v1_ingest_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitEventRequest.ProtoReflect.Descriptor instead.
func (*SubmitEventRequest) Descriptor() ([]byte, []int) {
	return file_marginsettle_ingest_v1_ingest_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitEventRequest) GetEvent() *v1.EventSubmission {
	if x != nil {
		return x.Event
	}
	return nil
}

type SubmitEventResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitEventResponse) Reset() {
	*x = SubmitEventResponse{}
	mi := &file_marginsettle_ingest_v1_ingest_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitEventResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitEventResponse) ProtoMessage() {}

func (x *SubmitEventResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marginsettle_ingest_v1_ingest_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitEventResponse.ProtoReflect.Descriptor instead.
func (*SubmitEventResponse) Descriptor() ([]byte, []int) {
	return file_marginsettle_ingest_v1_ingest_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitEventResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

var File_marginsettle_ingest_v1_ingest_proto protoreflect.FileDescriptor

var file_marginsettle_ingest_v1_ingest_proto_rawDesc = []byte{
	0x0a, 0x23, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x73, 0x65, 0x74, 0x74, 0x6c, 0x65, 0x2f, 0x69,
	0x6e, 0x67, 0x65, 0x73, 0x74, 0x2f, 0x76, 0x31, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x16, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x73, 0x65, 0x74,
	0x74, 0x6c, 0x65, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x67,
	0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x1a, 0x23, 0x6d, 0x61, 0x72,
	0x67, 0x69, 0x6e, 0x73, 0x65, 0x74, 0x74, 0x6c, 0x65, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73,
	0x2f, 0x76, 0x31, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x22, 0x53, 0x0a, 0x12, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x3d, 0x0a, 0x05, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x27, 0x2e, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x73, 0x65,
	0x74, 0x74, 0x6c, 0x65, 0x2e, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x45,
	0x76, 0x65, 0x6e, 0x74, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x05,
	0x65, 0x76, 0x65, 0x6e, 0x74, 0x22, 0x31, 0x0a, 0x13, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x45,
	0x76, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a, 0x0a, 0x08,
	0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x08,
	0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x32, 0x8e, 0x01, 0x0a, 0x0d, 0x49, 0x6e, 0x67,
	0x65, 0x73, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x7d, 0x0a, 0x0b, 0x53, 0x75,
	0x62, 0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x12, 0x2a, 0x2e, 0x6d, 0x61, 0x72, 0x67,
	0x69, 0x6e, 0x73, 0x65, 0x74, 0x74, 0x6c, 0x65, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2b, 0x2e, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x73, 0x65,
	0x74, 0x74, 0x6c, 0x65, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53,
	0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x22, 0x15, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x0f, 0x3a, 0x01, 0x2a, 0x22, 0x0a, 0x2f,
	0x76, 0x31, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x42, 0x35, 0x5a, 0x33, 0x4d, 0x61, 0x72,
	0x67, 0x69, 0x6e, 0x53, 0x65, 0x74, 0x74, 0x6c, 0x65, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f,
	0x2f, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x73, 0x65, 0x74, 0x74, 0x6c, 0x65, 0x2f, 0x69, 0x6e,
	0x67, 0x65, 0x73, 0x74, 0x2f, 0x76, 0x31, 0x3b, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x76, 0x31,
	0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_marginsettle_ingest_v1_ingest_proto_rawDescOnce sync.Once
	file_marginsettle_ingest_v1_ingest_proto_rawDescData = file_marginsettle_ingest_v1_ingest_proto_rawDesc
)

func file_marginsettle_ingest_v1_ingest_proto_rawDescGZIP() []byte {
	file_marginsettle_ingest_v1_ingest_proto_rawDescOnce.Do(func() {
		file_marginsettle_ingest_v1_ingest_proto_rawDescData = protoimpl.X.CompressGZIP(file_marginsettle_ingest_v1_ingest_proto_rawDescData)
	})
	return file_marginsettle_ingest_v1_ingest_proto_rawDescData
}

var file_marginsettle_ingest_v1_ingest_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_marginsettle_ingest_v1_ingest_proto_goTypes = []any{
	(*SubmitEventRequest)(nil),  // 0: marginsettle.ingest.v1.SubmitEventRequest
	(*SubmitEventResponse)(nil), // 1: marginsettle.ingest.v1.SubmitEventResponse
	(*v1.EventSubmission)(nil),  // 2: marginsettle.events.v1.EventSubmission
}
var file_marginsettle_ingest_v1_ingest_proto_depIdxs = []int32{
	2, // 0: marginsettle.ingest.v1.SubmitEventRequest.event:type_name -> marginsettle.events.v1.EventSubmission
	0, // 1: marginsettle.ingest.v1.IngestService.SubmitEvent:input_type -> marginsettle.ingest.v1.SubmitEventRequest
	1, // 2: marginsettle.ingest.v1.IngestService.SubmitEvent:output_type -> marginsettle.ingest.v1.SubmitEventResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_marginsettle_ingest_v1_ingest_proto_init() }
func file_marginsettle_ingest_v1_ingest_proto_init() {
	if File_marginsettle_ingest_v1_ingest_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_marginsettle_ingest_v1_ingest_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_marginsettle_ingest_v1_ingest_proto_goTypes,
		DependencyIndexes: file_marginsettle_ingest_v1_ingest_proto_depIdxs,
		MessageInfos:      file_marginsettle_ingest_v1_ingest_proto_msgTypes,
	}.Build()
	File_marginsettle_ingest_v1_ingest_proto = out.File
	file_marginsettle_ingest_v1_ingest_proto_rawDesc = nil
	file_marginsettle_ingest_v1_ingest_proto_goTypes = nil
	file_marginsettle_ingest_v1_ingest_proto_depIdxs = nil
}
