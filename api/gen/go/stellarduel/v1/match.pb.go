// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: stellarduel/v1/match.proto

package stellarduelv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

// Difficulty selects the AI pilot tuning.
type Difficulty int32

const (
	Difficulty_DIFFICULTY_UNSPECIFIED Difficulty = 0
	Difficulty_DIFFICULTY_EASY        Difficulty = 1
	Difficulty_DIFFICULTY_MEDIUM      Difficulty = 2
	Difficulty_DIFFICULTY_HARD        Difficulty = 3
	Difficulty_DIFFICULTY_ELITE       Difficulty = 4
)

// Enum value maps for Difficulty.
var (
	Difficulty_name = map[int32]string{
		0: "DIFFICULTY_UNSPECIFIED",
		1: "DIFFICULTY_EASY",
		2: "DIFFICULTY_MEDIUM",
		3: "DIFFICULTY_HARD",
		4: "DIFFICULTY_ELITE",
	}
	Difficulty_value = map[string]int32{
		"DIFFICULTY_UNSPECIFIED": 0,
		"DIFFICULTY_EASY":        1,
		"DIFFICULTY_MEDIUM":      2,
		"DIFFICULTY_HARD":        3,
		"DIFFICULTY_ELITE":       4,
	}
)

func (x Difficulty) Enum() *Difficulty {
	p := new(Difficulty)
	*p = x
	return p
}

func (x Difficulty) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Difficulty) Descriptor() protoreflect.EnumDescriptor {
	return file_stellarduel_v1_match_proto_enumTypes[0].Descriptor()
}

func (Difficulty) Type() protoreflect.EnumType {
	return &file_stellarduel_v1_match_proto_enumTypes[0]
}

func (x Difficulty) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Difficulty.Descriptor instead.
func (Difficulty) EnumDescriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{0}
}

// MatchPhase is the match state machine phase.
type MatchPhase int32

const (
	MatchPhase_MATCH_PHASE_UNSPECIFIED MatchPhase = 0
	MatchPhase_MATCH_PHASE_PENDING     MatchPhase = 1
	MatchPhase_MATCH_PHASE_PLAYING     MatchPhase = 2
	MatchPhase_MATCH_PHASE_GOAL_RESET  MatchPhase = 3
	MatchPhase_MATCH_PHASE_COMPLETE    MatchPhase = 4
)

// Enum value maps for MatchPhase.
var (
	MatchPhase_name = map[int32]string{
		0: "MATCH_PHASE_UNSPECIFIED",
		1: "MATCH_PHASE_PENDING",
		2: "MATCH_PHASE_PLAYING",
		3: "MATCH_PHASE_GOAL_RESET",
		4: "MATCH_PHASE_COMPLETE",
	}
	MatchPhase_value = map[string]int32{
		"MATCH_PHASE_UNSPECIFIED": 0,
		"MATCH_PHASE_PENDING":     1,
		"MATCH_PHASE_PLAYING":     2,
		"MATCH_PHASE_GOAL_RESET":  3,
		"MATCH_PHASE_COMPLETE":    4,
	}
)

func (x MatchPhase) Enum() *MatchPhase {
	p := new(MatchPhase)
	*p = x
	return p
}

func (x MatchPhase) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (MatchPhase) Descriptor() protoreflect.EnumDescriptor {
	return file_stellarduel_v1_match_proto_enumTypes[1].Descriptor()
}

func (MatchPhase) Type() protoreflect.EnumType {
	return &file_stellarduel_v1_match_proto_enumTypes[1]
}

func (x MatchPhase) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use MatchPhase.Descriptor instead.
func (MatchPhase) EnumDescriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{1}
}

// MatchWinner identifies the side that won a completed match.
type MatchWinner int32

const (
	MatchWinner_MATCH_WINNER_UNSPECIFIED MatchWinner = 0
	MatchWinner_MATCH_WINNER_PLAYER      MatchWinner = 1
	MatchWinner_MATCH_WINNER_AI          MatchWinner = 2
	MatchWinner_MATCH_WINNER_DRAW        MatchWinner = 3
)

// Enum value maps for MatchWinner.
var (
	MatchWinner_name = map[int32]string{
		0: "MATCH_WINNER_UNSPECIFIED",
		1: "MATCH_WINNER_PLAYER",
		2: "MATCH_WINNER_AI",
		3: "MATCH_WINNER_DRAW",
	}
	MatchWinner_value = map[string]int32{
		"MATCH_WINNER_UNSPECIFIED": 0,
		"MATCH_WINNER_PLAYER":      1,
		"MATCH_WINNER_AI":          2,
		"MATCH_WINNER_DRAW":        3,
	}
)

func (x MatchWinner) Enum() *MatchWinner {
	p := new(MatchWinner)
	*p = x
	return p
}

func (x MatchWinner) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (MatchWinner) Descriptor() protoreflect.EnumDescriptor {
	return file_stellarduel_v1_match_proto_enumTypes[2].Descriptor()
}

func (MatchWinner) Type() protoreflect.EnumType {
	return &file_stellarduel_v1_match_proto_enumTypes[2]
}

func (x MatchWinner) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use MatchWinner.Descriptor instead.
func (MatchWinner) EnumDescriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{2}
}

// Match is the persisted match record.
type Match struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ArenaKey   string                 `protobuf:"bytes,2,opt,name=arena_key,json=arenaKey,proto3" json:"arena_key,omitempty"`
	Difficulty Difficulty             `protobuf:"varint,3,opt,name=difficulty,proto3,enum=stellarduel.v1.Difficulty" json:"difficulty,omitempty"`
	// Seed that reproduces the match simulation.
	Seed        int64      `protobuf:"varint,4,opt,name=seed,proto3" json:"seed,omitempty"`
	Phase       MatchPhase `protobuf:"varint,5,opt,name=phase,proto3,enum=stellarduel.v1.MatchPhase" json:"phase,omitempty"`
	PlayerScore int32      `protobuf:"varint,6,opt,name=player_score,json=playerScore,proto3" json:"player_score,omitempty"`
	AiScore     int32      `protobuf:"varint,7,opt,name=ai_score,json=aiScore,proto3" json:"ai_score,omitempty"`
	// Player goal combo multiplier, resets when the AI scores.
	Combo         int32                  `protobuf:"varint,8,opt,name=combo,proto3" json:"combo,omitempty"`
	Winner        MatchWinner            `protobuf:"varint,9,opt,name=winner,proto3,enum=stellarduel.v1.MatchWinner" json:"winner,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	CompletedAt   *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Match) Reset() {
	*x = Match{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Match) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Match) ProtoMessage() {}

func (x *Match) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Match.ProtoReflect.Descriptor instead.
func (*Match) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{0}
}

func (x *Match) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Match) GetArenaKey() string {
	if x != nil {
		return x.ArenaKey
	}
	return ""
}

func (x *Match) GetDifficulty() Difficulty {
	if x != nil {
		return x.Difficulty
	}
	return Difficulty_DIFFICULTY_UNSPECIFIED
}

func (x *Match) GetSeed() int64 {
	if x != nil {
		return x.Seed
	}
	return 0
}

func (x *Match) GetPhase() MatchPhase {
	if x != nil {
		return x.Phase
	}
	return MatchPhase_MATCH_PHASE_UNSPECIFIED
}

func (x *Match) GetPlayerScore() int32 {
	if x != nil {
		return x.PlayerScore
	}
	return 0
}

func (x *Match) GetAiScore() int32 {
	if x != nil {
		return x.AiScore
	}
	return 0
}

func (x *Match) GetCombo() int32 {
	if x != nil {
		return x.Combo
	}
	return 0
}

func (x *Match) GetWinner() MatchWinner {
	if x != nil {
		return x.Winner
	}
	return MatchWinner_MATCH_WINNER_UNSPECIFIED
}

func (x *Match) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Match) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

// Vector is a 2D position or velocity in field units.
type Vector struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             float64                `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             float64                `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Vector) Reset() {
	*x = Vector{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vector) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vector) ProtoMessage() {}

func (x *Vector) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vector.ProtoReflect.Descriptor instead.
func (*Vector) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{1}
}

func (x *Vector) GetX() float64 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Vector) GetY() float64 {
	if x != nil {
		return x.Y
	}
	return 0
}

// ShipState is one ship's kinematic state inside a snapshot.
type ShipState struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Position *Vector                `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Velocity *Vector                `protobuf:"bytes,2,opt,name=velocity,proto3" json:"velocity,omitempty"`
	// Heading in radians.
	Angle float64 `protobuf:"fixed64,3,opt,name=angle,proto3" json:"angle,omitempty"`
	// Boost tank charge, 0-100.
	Boost         float64 `protobuf:"fixed64,4,opt,name=boost,proto3" json:"boost,omitempty"`
	Boosting      bool    `protobuf:"varint,5,opt,name=boosting,proto3" json:"boosting,omitempty"`
	Score         int32   `protobuf:"varint,6,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShipState) Reset() {
	*x = ShipState{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShipState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShipState) ProtoMessage() {}

func (x *ShipState) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShipState.ProtoReflect.Descriptor instead.
func (*ShipState) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{2}
}

func (x *ShipState) GetPosition() *Vector {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *ShipState) GetVelocity() *Vector {
	if x != nil {
		return x.Velocity
	}
	return nil
}

func (x *ShipState) GetAngle() float64 {
	if x != nil {
		return x.Angle
	}
	return 0
}

func (x *ShipState) GetBoost() float64 {
	if x != nil {
		return x.Boost
	}
	return 0
}

func (x *ShipState) GetBoosting() bool {
	if x != nil {
		return x.Boosting
	}
	return false
}

func (x *ShipState) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

// MatchSnapshot is one frame of simulation state.
type MatchSnapshot struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	MatchId string                 `protobuf:"bytes,1,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	Phase   MatchPhase             `protobuf:"varint,2,opt,name=phase,proto3,enum=stellarduel.v1.MatchPhase" json:"phase,omitempty"`
	// Regulation seconds remaining.
	Clock        float64     `protobuf:"fixed64,3,opt,name=clock,proto3" json:"clock,omitempty"`
	Tick         int64       `protobuf:"varint,4,opt,name=tick,proto3" json:"tick,omitempty"`
	Combo        int32       `protobuf:"varint,5,opt,name=combo,proto3" json:"combo,omitempty"`
	Winner       MatchWinner `protobuf:"varint,6,opt,name=winner,proto3,enum=stellarduel.v1.MatchWinner" json:"winner,omitempty"`
	Player       *ShipState  `protobuf:"bytes,7,opt,name=player,proto3" json:"player,omitempty"`
	Opponent     *ShipState  `protobuf:"bytes,8,opt,name=opponent,proto3" json:"opponent,omitempty"`
	BallPosition *Vector     `protobuf:"bytes,9,opt,name=ball_position,json=ballPosition,proto3" json:"ball_position,omitempty"`
	BallVelocity *Vector     `protobuf:"bytes,10,opt,name=ball_velocity,json=ballVelocity,proto3" json:"ball_velocity,omitempty"`
	// Number of events emitted so far.
	EventCount    int64 `protobuf:"varint,11,opt,name=event_count,json=eventCount,proto3" json:"event_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchSnapshot) Reset() {
	*x = MatchSnapshot{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchSnapshot) ProtoMessage() {}

func (x *MatchSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchSnapshot.ProtoReflect.Descriptor instead.
func (*MatchSnapshot) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{3}
}

func (x *MatchSnapshot) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *MatchSnapshot) GetPhase() MatchPhase {
	if x != nil {
		return x.Phase
	}
	return MatchPhase_MATCH_PHASE_UNSPECIFIED
}

func (x *MatchSnapshot) GetClock() float64 {
	if x != nil {
		return x.Clock
	}
	return 0
}

func (x *MatchSnapshot) GetTick() int64 {
	if x != nil {
		return x.Tick
	}
	return 0
}

func (x *MatchSnapshot) GetCombo() int32 {
	if x != nil {
		return x.Combo
	}
	return 0
}

func (x *MatchSnapshot) GetWinner() MatchWinner {
	if x != nil {
		return x.Winner
	}
	return MatchWinner_MATCH_WINNER_UNSPECIFIED
}

func (x *MatchSnapshot) GetPlayer() *ShipState {
	if x != nil {
		return x.Player
	}
	return nil
}

func (x *MatchSnapshot) GetOpponent() *ShipState {
	if x != nil {
		return x.Opponent
	}
	return nil
}

func (x *MatchSnapshot) GetBallPosition() *Vector {
	if x != nil {
		return x.BallPosition
	}
	return nil
}

func (x *MatchSnapshot) GetBallVelocity() *Vector {
	if x != nil {
		return x.BallVelocity
	}
	return nil
}

func (x *MatchSnapshot) GetEventCount() int64 {
	if x != nil {
		return x.EventCount
	}
	return 0
}

// ControlInput is the player's latched control state.
type ControlInput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Left          bool                   `protobuf:"varint,1,opt,name=left,proto3" json:"left,omitempty"`
	Right         bool                   `protobuf:"varint,2,opt,name=right,proto3" json:"right,omitempty"`
	Forward       bool                   `protobuf:"varint,3,opt,name=forward,proto3" json:"forward,omitempty"`
	Back          bool                   `protobuf:"varint,4,opt,name=back,proto3" json:"back,omitempty"`
	Boost         bool                   `protobuf:"varint,5,opt,name=boost,proto3" json:"boost,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ControlInput) Reset() {
	*x = ControlInput{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ControlInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ControlInput) ProtoMessage() {}

func (x *ControlInput) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ControlInput.ProtoReflect.Descriptor instead.
func (*ControlInput) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{4}
}

func (x *ControlInput) GetLeft() bool {
	if x != nil {
		return x.Left
	}
	return false
}

func (x *ControlInput) GetRight() bool {
	if x != nil {
		return x.Right
	}
	return false
}

func (x *ControlInput) GetForward() bool {
	if x != nil {
		return x.Forward
	}
	return false
}

func (x *ControlInput) GetBack() bool {
	if x != nil {
		return x.Back
	}
	return false
}

func (x *ControlInput) GetBoost() bool {
	if x != nil {
		return x.Boost
	}
	return false
}

// MatchEvent is one entry of a match's event log.
type MatchEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Position in the match event log.
	Seq int64 `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	// Simulation tick the event fired on.
	Tick int64  `protobuf:"varint,2,opt,name=tick,proto3" json:"tick,omitempty"`
	Type string `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	// Announcer line rendered for the requested locale; empty for
	// events with no announcer text.
	Message       string            `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	Payload       map[string]string `protobuf:"bytes,5,rep,name=payload,proto3" json:"payload,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchEvent) Reset() {
	*x = MatchEvent{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchEvent) ProtoMessage() {}

func (x *MatchEvent) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchEvent.ProtoReflect.Descriptor instead.
func (*MatchEvent) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{5}
}

func (x *MatchEvent) GetSeq() int64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *MatchEvent) GetTick() int64 {
	if x != nil {
		return x.Tick
	}
	return 0
}

func (x *MatchEvent) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *MatchEvent) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *MatchEvent) GetPayload() map[string]string {
	if x != nil {
		return x.Payload
	}
	return nil
}

// ArenaRecord is the best combined goal total reached on an arena.
type ArenaRecord struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ArenaKey       string                 `protobuf:"bytes,1,opt,name=arena_key,json=arenaKey,proto3" json:"arena_key,omitempty"`
	BestTotalGoals int32                  `protobuf:"varint,2,opt,name=best_total_goals,json=bestTotalGoals,proto3" json:"best_total_goals,omitempty"`
	UpdatedAt      *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ArenaRecord) Reset() {
	*x = ArenaRecord{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ArenaRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ArenaRecord) ProtoMessage() {}

func (x *ArenaRecord) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ArenaRecord.ProtoReflect.Descriptor instead.
func (*ArenaRecord) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{6}
}

func (x *ArenaRecord) GetArenaKey() string {
	if x != nil {
		return x.ArenaKey
	}
	return ""
}

func (x *ArenaRecord) GetBestTotalGoals() int32 {
	if x != nil {
		return x.BestTotalGoals
	}
	return 0
}

func (x *ArenaRecord) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateMatchRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	ArenaKey   string                 `protobuf:"bytes,1,opt,name=arena_key,json=arenaKey,proto3" json:"arena_key,omitempty"`
	Difficulty Difficulty             `protobuf:"varint,2,opt,name=difficulty,proto3,enum=stellarduel.v1.Difficulty" json:"difficulty,omitempty"`
	// Optional seed; a random seed is drawn when zero.
	Seed          int64 `protobuf:"varint,3,opt,name=seed,proto3" json:"seed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMatchRequest) Reset() {
	*x = CreateMatchRequest{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMatchRequest) ProtoMessage() {}

func (x *CreateMatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMatchRequest.ProtoReflect.Descriptor instead.
func (*CreateMatchRequest) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{7}
}

func (x *CreateMatchRequest) GetArenaKey() string {
	if x != nil {
		return x.ArenaKey
	}
	return ""
}

func (x *CreateMatchRequest) GetDifficulty() Difficulty {
	if x != nil {
		return x.Difficulty
	}
	return Difficulty_DIFFICULTY_UNSPECIFIED
}

func (x *CreateMatchRequest) GetSeed() int64 {
	if x != nil {
		return x.Seed
	}
	return 0
}

type CreateMatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Match         *Match                 `protobuf:"bytes,1,opt,name=match,proto3" json:"match,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMatchResponse) Reset() {
	*x = CreateMatchResponse{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMatchResponse) ProtoMessage() {}

func (x *CreateMatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMatchResponse.ProtoReflect.Descriptor instead.
func (*CreateMatchResponse) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{8}
}

func (x *CreateMatchResponse) GetMatch() *Match {
	if x != nil {
		return x.Match
	}
	return nil
}

type GetMatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MatchId       string                 `protobuf:"bytes,1,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMatchRequest) Reset() {
	*x = GetMatchRequest{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMatchRequest) ProtoMessage() {}

func (x *GetMatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMatchRequest.ProtoReflect.Descriptor instead.
func (*GetMatchRequest) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{9}
}

func (x *GetMatchRequest) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

type GetMatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Match         *Match                 `protobuf:"bytes,1,opt,name=match,proto3" json:"match,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMatchResponse) Reset() {
	*x = GetMatchResponse{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMatchResponse) ProtoMessage() {}

func (x *GetMatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMatchResponse.ProtoReflect.Descriptor instead.
func (*GetMatchResponse) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{10}
}

func (x *GetMatchResponse) GetMatch() *Match {
	if x != nil {
		return x.Match
	}
	return nil
}

type ListMatchesRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	PageSize  int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	// AIP-160 filter over arena, status, winner, difficulty, created_at.
	Filter        string `protobuf:"bytes,3,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMatchesRequest) Reset() {
	*x = ListMatchesRequest{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesRequest) ProtoMessage() {}

func (x *ListMatchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesRequest.ProtoReflect.Descriptor instead.
func (*ListMatchesRequest) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{11}
}

func (x *ListMatchesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListMatchesRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

func (x *ListMatchesRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type ListMatchesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matches       []*Match               `protobuf:"bytes,1,rep,name=matches,proto3" json:"matches,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMatchesResponse) Reset() {
	*x = ListMatchesResponse{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesResponse) ProtoMessage() {}

func (x *ListMatchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesResponse.ProtoReflect.Descriptor instead.
func (*ListMatchesResponse) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{12}
}

func (x *ListMatchesResponse) GetMatches() []*Match {
	if x != nil {
		return x.Matches
	}
	return nil
}

func (x *ListMatchesResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type SubmitInputRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	MatchId  string                 `protobuf:"bytes,1,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	Controls *ControlInput          `protobuf:"bytes,2,opt,name=controls,proto3" json:"controls,omitempty"`
	// Monotonic client sequence; stale inputs are rejected.
	Sequence      int64 `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitInputRequest) Reset() {
	*x = SubmitInputRequest{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitInputRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitInputRequest) ProtoMessage() {}

func (x *SubmitInputRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitInputRequest.ProtoReflect.Descriptor instead.
func (*SubmitInputRequest) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{13}
}

func (x *SubmitInputRequest) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *SubmitInputRequest) GetControls() *ControlInput {
	if x != nil {
		return x.Controls
	}
	return nil
}

func (x *SubmitInputRequest) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

type SubmitInputResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Tick the controls will first apply on.
	AppliedTick   int64 `protobuf:"varint,1,opt,name=applied_tick,json=appliedTick,proto3" json:"applied_tick,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitInputResponse) Reset() {
	*x = SubmitInputResponse{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitInputResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitInputResponse) ProtoMessage() {}

func (x *SubmitInputResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitInputResponse.ProtoReflect.Descriptor instead.
func (*SubmitInputResponse) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{14}
}

func (x *SubmitInputResponse) GetAppliedTick() int64 {
	if x != nil {
		return x.AppliedTick
	}
	return 0
}

type WatchMatchRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	MatchId string                 `protobuf:"bytes,1,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	// Snapshot cadence divisor: 1 streams every tick, 6 streams 10 Hz.
	// Defaults to 6 when zero.
	TickDivisor   int32 `protobuf:"varint,2,opt,name=tick_divisor,json=tickDivisor,proto3" json:"tick_divisor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchMatchRequest) Reset() {
	*x = WatchMatchRequest{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchMatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchMatchRequest) ProtoMessage() {}

func (x *WatchMatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchMatchRequest.ProtoReflect.Descriptor instead.
func (*WatchMatchRequest) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{15}
}

func (x *WatchMatchRequest) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *WatchMatchRequest) GetTickDivisor() int32 {
	if x != nil {
		return x.TickDivisor
	}
	return 0
}

type ListMatchEventsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	MatchId   string                 `protobuf:"bytes,1,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	PageSize  int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string                 `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	// BCP 47 locale for announcer lines; defaults to en-US.
	Locale        string `protobuf:"bytes,4,opt,name=locale,proto3" json:"locale,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMatchEventsRequest) Reset() {
	*x = ListMatchEventsRequest{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchEventsRequest) ProtoMessage() {}

func (x *ListMatchEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchEventsRequest.ProtoReflect.Descriptor instead.
func (*ListMatchEventsRequest) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{16}
}

func (x *ListMatchEventsRequest) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *ListMatchEventsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListMatchEventsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

func (x *ListMatchEventsRequest) GetLocale() string {
	if x != nil {
		return x.Locale
	}
	return ""
}

type ListMatchEventsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Events        []*MatchEvent          `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMatchEventsResponse) Reset() {
	*x = ListMatchEventsResponse{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchEventsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchEventsResponse) ProtoMessage() {}

func (x *ListMatchEventsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchEventsResponse.ProtoReflect.Descriptor instead.
func (*ListMatchEventsResponse) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{17}
}

func (x *ListMatchEventsResponse) GetEvents() []*MatchEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

func (x *ListMatchEventsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type ListArenaRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArenaRecordsRequest) Reset() {
	*x = ListArenaRecordsRequest{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArenaRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArenaRecordsRequest) ProtoMessage() {}

func (x *ListArenaRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArenaRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListArenaRecordsRequest) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{18}
}

type ListArenaRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*ArenaRecord         `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArenaRecordsResponse) Reset() {
	*x = ListArenaRecordsResponse{}
	mi := &file_stellarduel_v1_match_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArenaRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArenaRecordsResponse) ProtoMessage() {}

func (x *ListArenaRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stellarduel_v1_match_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArenaRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListArenaRecordsResponse) Descriptor() ([]byte, []int) {
	return file_stellarduel_v1_match_proto_rawDescGZIP(), []int{19}
}

func (x *ListArenaRecordsResponse) GetRecords() []*ArenaRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

var File_stellarduel_v1_match_proto protoreflect.FileDescriptor

const file_stellarduel_v1_match_proto_rawDesc = "" +
	"\n" +
	"\x1astellarduel/v1/match.proto\x12\x0estellarduel.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xb9\x03\n" +
	"\x05Match\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tarena_key\x18\x02 \x01(\tR\barenaKey\x12:\n" +
	"\n" +
	"difficulty\x18\x03 \x01(\x0e2\x1a.stellarduel.v1.DifficultyR\n" +
	"difficulty\x12\x12\n" +
	"\x04seed\x18\x04 \x01(\x03R\x04seed\x120\n" +
	"\x05phase\x18\x05 \x01(\x0e2\x1a.stellarduel.v1.MatchPhaseR\x05phase\x12!\n" +
	"\fplayer_score\x18\x06 \x01(\x05R\vplayerScore\x12\x19\n" +
	"\bai_score\x18\a \x01(\x05R\aaiScore\x12\x14\n" +
	"\x05combo\x18\b \x01(\x05R\x05combo\x123\n" +
	"\x06winner\x18\t \x01(\x0e2\x1b.stellarduel.v1.MatchWinnerR\x06winner\x129\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x12=\n" +
	"\fcompleted_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\"$\n" +
	"\x06Vector\x12\f\n" +
	"\x01x\x18\x01 \x01(\x01R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x01R\x01y\"\xd1\x01\n" +
	"\tShipState\x122\n" +
	"\bposition\x18\x01 \x01(\v2\x16.stellarduel.v1.VectorR\bposition\x122\n" +
	"\bvelocity\x18\x02 \x01(\v2\x16.stellarduel.v1.VectorR\bvelocity\x12\x14\n" +
	"\x05angle\x18\x03 \x01(\x01R\x05angle\x12\x14\n" +
	"\x05boost\x18\x04 \x01(\x01R\x05boost\x12\x1a\n" +
	"\bboosting\x18\x05 \x01(\bR\bboosting\x12\x14\n" +
	"\x05score\x18\x06 \x01(\x05R\x05score\"\xd6\x03\n" +
	"\rMatchSnapshot\x12\x19\n" +
	"\bmatch_id\x18\x01 \x01(\tR\amatchId\x120\n" +
	"\x05phase\x18\x02 \x01(\x0e2\x1a.stellarduel.v1.MatchPhaseR\x05phase\x12\x14\n" +
	"\x05clock\x18\x03 \x01(\x01R\x05clock\x12\x12\n" +
	"\x04tick\x18\x04 \x01(\x03R\x04tick\x12\x14\n" +
	"\x05combo\x18\x05 \x01(\x05R\x05combo\x123\n" +
	"\x06winner\x18\x06 \x01(\x0e2\x1b.stellarduel.v1.MatchWinnerR\x06winner\x121\n" +
	"\x06player\x18\a \x01(\v2\x19.stellarduel.v1.ShipStateR\x06player\x125\n" +
	"\bopponent\x18\b \x01(\v2\x19.stellarduel.v1.ShipStateR\bopponent\x12;\n" +
	"\rball_position\x18\t \x01(\v2\x16.stellarduel.v1.VectorR\fballPosition\x12;\n" +
	"\rball_velocity\x18\n" +
	" \x01(\v2\x16.stellarduel.v1.VectorR\fballVelocity\x12\x1f\n" +
	"\vevent_count\x18\v \x01(\x03R\n" +
	"eventCount\"|\n" +
	"\fControlInput\x12\x12\n" +
	"\x04left\x18\x01 \x01(\bR\x04left\x12\x14\n" +
	"\x05right\x18\x02 \x01(\bR\x05right\x12\x18\n" +
	"\aforward\x18\x03 \x01(\bR\aforward\x12\x12\n" +
	"\x04back\x18\x04 \x01(\bR\x04back\x12\x14\n" +
	"\x05boost\x18\x05 \x01(\bR\x05boost\"\xdf\x01\n" +
	"\n" +
	"MatchEvent\x12\x10\n" +
	"\x03seq\x18\x01 \x01(\x03R\x03seq\x12\x12\n" +
	"\x04tick\x18\x02 \x01(\x03R\x04tick\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\x12A\n" +
	"\apayload\x18\x05 \x03(\v2'.stellarduel.v1.MatchEvent.PayloadEntryR\apayload\x1a:\n" +
	"\fPayloadEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x8f\x01\n" +
	"\vArenaRecord\x12\x1b\n" +
	"\tarena_key\x18\x01 \x01(\tR\barenaKey\x12(\n" +
	"\x10best_total_goals\x18\x02 \x01(\x05R\x0ebestTotalGoals\x129\n" +
	"\n" +
	"updated_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x81\x01\n" +
	"\x12CreateMatchRequest\x12\x1b\n" +
	"\tarena_key\x18\x01 \x01(\tR\barenaKey\x12:\n" +
	"\n" +
	"difficulty\x18\x02 \x01(\x0e2\x1a.stellarduel.v1.DifficultyR\n" +
	"difficulty\x12\x12\n" +
	"\x04seed\x18\x03 \x01(\x03R\x04seed\"B\n" +
	"\x13CreateMatchResponse\x12+\n" +
	"\x05match\x18\x01 \x01(\v2\x15.stellarduel.v1.MatchR\x05match\",\n" +
	"\x0fGetMatchRequest\x12\x19\n" +
	"\bmatch_id\x18\x01 \x01(\tR\amatchId\"?\n" +
	"\x10GetMatchResponse\x12+\n" +
	"\x05match\x18\x01 \x01(\v2\x15.stellarduel.v1.MatchR\x05match\"h\n" +
	"\x12ListMatchesRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\x12\x16\n" +
	"\x06filter\x18\x03 \x01(\tR\x06filter\"n\n" +
	"\x13ListMatchesResponse\x12/\n" +
	"\amatches\x18\x01 \x03(\v2\x15.stellarduel.v1.MatchR\amatches\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\x85\x01\n" +
	"\x12SubmitInputRequest\x12\x19\n" +
	"\bmatch_id\x18\x01 \x01(\tR\amatchId\x128\n" +
	"\bcontrols\x18\x02 \x01(\v2\x1c.stellarduel.v1.ControlInputR\bcontrols\x12\x1a\n" +
	"\bsequence\x18\x03 \x01(\x03R\bsequence\"8\n" +
	"\x13SubmitInputResponse\x12!\n" +
	"\fapplied_tick\x18\x01 \x01(\x03R\vappliedTick\"Q\n" +
	"\x11WatchMatchRequest\x12\x19\n" +
	"\bmatch_id\x18\x01 \x01(\tR\amatchId\x12!\n" +
	"\ftick_divisor\x18\x02 \x01(\x05R\vtickDivisor\"\x87\x01\n" +
	"\x16ListMatchEventsRequest\x12\x19\n" +
	"\bmatch_id\x18\x01 \x01(\tR\amatchId\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x03 \x01(\tR\tpageToken\x12\x16\n" +
	"\x06locale\x18\x04 \x01(\tR\x06locale\"u\n" +
	"\x17ListMatchEventsResponse\x122\n" +
	"\x06events\x18\x01 \x03(\v2\x1a.stellarduel.v1.MatchEventR\x06events\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\x19\n" +
	"\x17ListArenaRecordsRequest\"Q\n" +
	"\x18ListArenaRecordsResponse\x125\n" +
	"\arecords\x18\x01 \x03(\v2\x1b.stellarduel.v1.ArenaRecordR\arecords*\x7f\n" +
	"\n" +
	"Difficulty\x12\x1a\n" +
	"\x16DIFFICULTY_UNSPECIFIED\x10\x00\x12\x13\n" +
	"\x0fDIFFICULTY_EASY\x10\x01\x12\x15\n" +
	"\x11DIFFICULTY_MEDIUM\x10\x02\x12\x13\n" +
	"\x0fDIFFICULTY_HARD\x10\x03\x12\x14\n" +
	"\x10DIFFICULTY_ELITE\x10\x04*\x91\x01\n" +
	"\n" +
	"MatchPhase\x12\x1b\n" +
	"\x17MATCH_PHASE_UNSPECIFIED\x10\x00\x12\x17\n" +
	"\x13MATCH_PHASE_PENDING\x10\x01\x12\x17\n" +
	"\x13MATCH_PHASE_PLAYING\x10\x02\x12\x1a\n" +
	"\x16MATCH_PHASE_GOAL_RESET\x10\x03\x12\x18\n" +
	"\x14MATCH_PHASE_COMPLETE\x10\x04*p\n" +
	"\vMatchWinner\x12\x1c\n" +
	"\x18MATCH_WINNER_UNSPECIFIED\x10\x00\x12\x17\n" +
	"\x13MATCH_WINNER_PLAYER\x10\x01\x12\x13\n" +
	"\x0fMATCH_WINNER_AI\x10\x02\x12\x15\n" +
	"\x11MATCH_WINNER_DRAW\x10\x032\x82\x05\n" +
	"\fMatchService\x12V\n" +
	"\vCreateMatch\x12\".stellarduel.v1.CreateMatchRequest\x1a#.stellarduel.v1.CreateMatchResponse\x12M\n" +
	"\bGetMatch\x12\x1f.stellarduel.v1.GetMatchRequest\x1a .stellarduel.v1.GetMatchResponse\x12V\n" +
	"\vListMatches\x12\".stellarduel.v1.ListMatchesRequest\x1a#.stellarduel.v1.ListMatchesResponse\x12V\n" +
	"\vSubmitInput\x12\".stellarduel.v1.SubmitInputRequest\x1a#.stellarduel.v1.SubmitInputResponse\x12P\n" +
	"\n" +
	"WatchMatch\x12!.stellarduel.v1.WatchMatchRequest\x1a\x1d.stellarduel.v1.MatchSnapshot0\x01\x12b\n" +
	"\x0fListMatchEvents\x12&.stellarduel.v1.ListMatchEventsRequest\x1a'.stellarduel.v1.ListMatchEventsResponse\x12e\n" +
	"\x10ListArenaRecords\x12'.stellarduel.v1.ListArenaRecordsRequest\x1a(.stellarduel.v1.ListArenaRecordsResponseBMZKgithub.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1;stellarduelv1b\x06proto3"

var (
	file_stellarduel_v1_match_proto_rawDescOnce sync.Once
	file_stellarduel_v1_match_proto_rawDescData []byte
)

func file_stellarduel_v1_match_proto_rawDescGZIP() []byte {
	file_stellarduel_v1_match_proto_rawDescOnce.Do(func() {
		file_stellarduel_v1_match_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_stellarduel_v1_match_proto_rawDesc), len(file_stellarduel_v1_match_proto_rawDesc)))
	})
	return file_stellarduel_v1_match_proto_rawDescData
}

var file_stellarduel_v1_match_proto_enumTypes = make([]protoimpl.EnumInfo, 3)
var file_stellarduel_v1_match_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_stellarduel_v1_match_proto_goTypes = []any{
	(Difficulty)(0),                  // 0: stellarduel.v1.Difficulty
	(MatchPhase)(0),                  // 1: stellarduel.v1.MatchPhase
	(MatchWinner)(0),                 // 2: stellarduel.v1.MatchWinner
	(*Match)(nil),                    // 3: stellarduel.v1.Match
	(*Vector)(nil),                   // 4: stellarduel.v1.Vector
	(*ShipState)(nil),                // 5: stellarduel.v1.ShipState
	(*MatchSnapshot)(nil),            // 6: stellarduel.v1.MatchSnapshot
	(*ControlInput)(nil),             // 7: stellarduel.v1.ControlInput
	(*MatchEvent)(nil),               // 8: stellarduel.v1.MatchEvent
	(*ArenaRecord)(nil),              // 9: stellarduel.v1.ArenaRecord
	(*CreateMatchRequest)(nil),       // 10: stellarduel.v1.CreateMatchRequest
	(*CreateMatchResponse)(nil),      // 11: stellarduel.v1.CreateMatchResponse
	(*GetMatchRequest)(nil),          // 12: stellarduel.v1.GetMatchRequest
	(*GetMatchResponse)(nil),         // 13: stellarduel.v1.GetMatchResponse
	(*ListMatchesRequest)(nil),       // 14: stellarduel.v1.ListMatchesRequest
	(*ListMatchesResponse)(nil),      // 15: stellarduel.v1.ListMatchesResponse
	(*SubmitInputRequest)(nil),       // 16: stellarduel.v1.SubmitInputRequest
	(*SubmitInputResponse)(nil),      // 17: stellarduel.v1.SubmitInputResponse
	(*WatchMatchRequest)(nil),        // 18: stellarduel.v1.WatchMatchRequest
	(*ListMatchEventsRequest)(nil),   // 19: stellarduel.v1.ListMatchEventsRequest
	(*ListMatchEventsResponse)(nil),  // 20: stellarduel.v1.ListMatchEventsResponse
	(*ListArenaRecordsRequest)(nil),  // 21: stellarduel.v1.ListArenaRecordsRequest
	(*ListArenaRecordsResponse)(nil), // 22: stellarduel.v1.ListArenaRecordsResponse
	nil,                              // 23: stellarduel.v1.MatchEvent.PayloadEntry
	(*timestamppb.Timestamp)(nil),    // 24: google.protobuf.Timestamp
}
var file_stellarduel_v1_match_proto_depIdxs = []int32{
	0,  // 0: stellarduel.v1.Match.difficulty:type_name -> stellarduel.v1.Difficulty
	1,  // 1: stellarduel.v1.Match.phase:type_name -> stellarduel.v1.MatchPhase
	2,  // 2: stellarduel.v1.Match.winner:type_name -> stellarduel.v1.MatchWinner
	24, // 3: stellarduel.v1.Match.created_at:type_name -> google.protobuf.Timestamp
	24, // 4: stellarduel.v1.Match.completed_at:type_name -> google.protobuf.Timestamp
	4,  // 5: stellarduel.v1.ShipState.position:type_name -> stellarduel.v1.Vector
	4,  // 6: stellarduel.v1.ShipState.velocity:type_name -> stellarduel.v1.Vector
	1,  // 7: stellarduel.v1.MatchSnapshot.phase:type_name -> stellarduel.v1.MatchPhase
	2,  // 8: stellarduel.v1.MatchSnapshot.winner:type_name -> stellarduel.v1.MatchWinner
	5,  // 9: stellarduel.v1.MatchSnapshot.player:type_name -> stellarduel.v1.ShipState
	5,  // 10: stellarduel.v1.MatchSnapshot.opponent:type_name -> stellarduel.v1.ShipState
	4,  // 11: stellarduel.v1.MatchSnapshot.ball_position:type_name -> stellarduel.v1.Vector
	4,  // 12: stellarduel.v1.MatchSnapshot.ball_velocity:type_name -> stellarduel.v1.Vector
	23, // 13: stellarduel.v1.MatchEvent.payload:type_name -> stellarduel.v1.MatchEvent.PayloadEntry
	24, // 14: stellarduel.v1.ArenaRecord.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 15: stellarduel.v1.CreateMatchRequest.difficulty:type_name -> stellarduel.v1.Difficulty
	3,  // 16: stellarduel.v1.CreateMatchResponse.match:type_name -> stellarduel.v1.Match
	3,  // 17: stellarduel.v1.GetMatchResponse.match:type_name -> stellarduel.v1.Match
	3,  // 18: stellarduel.v1.ListMatchesResponse.matches:type_name -> stellarduel.v1.Match
	7,  // 19: stellarduel.v1.SubmitInputRequest.controls:type_name -> stellarduel.v1.ControlInput
	8,  // 20: stellarduel.v1.ListMatchEventsResponse.events:type_name -> stellarduel.v1.MatchEvent
	9,  // 21: stellarduel.v1.ListArenaRecordsResponse.records:type_name -> stellarduel.v1.ArenaRecord
	10, // 22: stellarduel.v1.MatchService.CreateMatch:input_type -> stellarduel.v1.CreateMatchRequest
	12, // 23: stellarduel.v1.MatchService.GetMatch:input_type -> stellarduel.v1.GetMatchRequest
	14, // 24: stellarduel.v1.MatchService.ListMatches:input_type -> stellarduel.v1.ListMatchesRequest
	16, // 25: stellarduel.v1.MatchService.SubmitInput:input_type -> stellarduel.v1.SubmitInputRequest
	18, // 26: stellarduel.v1.MatchService.WatchMatch:input_type -> stellarduel.v1.WatchMatchRequest
	19, // 27: stellarduel.v1.MatchService.ListMatchEvents:input_type -> stellarduel.v1.ListMatchEventsRequest
	21, // 28: stellarduel.v1.MatchService.ListArenaRecords:input_type -> stellarduel.v1.ListArenaRecordsRequest
	11, // 29: stellarduel.v1.MatchService.CreateMatch:output_type -> stellarduel.v1.CreateMatchResponse
	13, // 30: stellarduel.v1.MatchService.GetMatch:output_type -> stellarduel.v1.GetMatchResponse
	15, // 31: stellarduel.v1.MatchService.ListMatches:output_type -> stellarduel.v1.ListMatchesResponse
	17, // 32: stellarduel.v1.MatchService.SubmitInput:output_type -> stellarduel.v1.SubmitInputResponse
	6,  // 33: stellarduel.v1.MatchService.WatchMatch:output_type -> stellarduel.v1.MatchSnapshot
	20, // 34: stellarduel.v1.MatchService.ListMatchEvents:output_type -> stellarduel.v1.ListMatchEventsResponse
	22, // 35: stellarduel.v1.MatchService.ListArenaRecords:output_type -> stellarduel.v1.ListArenaRecordsResponse
	29, // [29:36] is the sub-list for method output_type
	22, // [22:29] is the sub-list for method input_type
	22, // [22:22] is the sub-list for extension type_name
	22, // [22:22] is the sub-list for extension extendee
	0,  // [0:22] is the sub-list for field type_name
}

func init() { file_stellarduel_v1_match_proto_init() }
func file_stellarduel_v1_match_proto_init() {
	if File_stellarduel_v1_match_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_stellarduel_v1_match_proto_rawDesc), len(file_stellarduel_v1_match_proto_rawDesc)),
			NumEnums:      3,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_stellarduel_v1_match_proto_goTypes,
		DependencyIndexes: file_stellarduel_v1_match_proto_depIdxs,
		EnumInfos:         file_stellarduel_v1_match_proto_enumTypes,
		MessageInfos:      file_stellarduel_v1_match_proto_msgTypes,
	}.Build()
	File_stellarduel_v1_match_proto = out.File
	file_stellarduel_v1_match_proto_goTypes = nil
	file_stellarduel_v1_match_proto_depIdxs = nil
}
