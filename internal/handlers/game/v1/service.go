package v1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "codequest.v1.GameService"

// Full method names, as declared in proto/codequest/v1/game.proto
const (
	GameService_GetPlayer_FullMethodName           = "/codequest.v1.GameService/GetPlayer"
	GameService_SpendSkillPoint_FullMethodName     = "/codequest.v1.GameService/SpendSkillPoint"
	GameService_UnlockAdvancedSkill_FullMethodName = "/codequest.v1.GameService/UnlockAdvancedSkill"
	GameService_EquipWeapon_FullMethodName         = "/codequest.v1.GameService/EquipWeapon"
	GameService_Rest_FullMethodName                = "/codequest.v1.GameService/Rest"
	GameService_ResetSave_FullMethodName           = "/codequest.v1.GameService/ResetSave"
	GameService_StartEncounter_FullMethodName      = "/codequest.v1.GameService/StartEncounter"
	GameService_GetEncounter_FullMethodName        = "/codequest.v1.GameService/GetEncounter"
	GameService_Attack_FullMethodName              = "/codequest.v1.GameService/Attack"
	GameService_Heal_FullMethodName                = "/codequest.v1.GameService/Heal"
	GameService_Flee_FullMethodName                = "/codequest.v1.GameService/Flee"
	GameService_StartDungeon_FullMethodName        = "/codequest.v1.GameService/StartDungeon"
	GameService_GetDungeonRun_FullMethodName       = "/codequest.v1.GameService/GetDungeonRun"
	GameService_SubmitStage_FullMethodName         = "/codequest.v1.GameService/SubmitStage"
	GameService_Classify_FullMethodName            = "/codequest.v1.GameService/Classify"
)

// GameServiceServer is the server API for the game service
type GameServiceServer interface {
	GetPlayer(context.Context, *GetPlayerRequest) (*PlayerResponse, error)
	SpendSkillPoint(context.Context, *SpendSkillPointRequest) (*PlayerResponse, error)
	UnlockAdvancedSkill(context.Context, *UnlockAdvancedSkillRequest) (*UnlockAdvancedSkillResponse, error)
	EquipWeapon(context.Context, *EquipWeaponRequest) (*PlayerResponse, error)
	Rest(context.Context, *RestRequest) (*RestResponse, error)
	ResetSave(context.Context, *ResetSaveRequest) (*PlayerResponse, error)
	StartEncounter(context.Context, *StartEncounterRequest) (*EncounterResponse, error)
	GetEncounter(context.Context, *EncounterRequest) (*EncounterResponse, error)
	Attack(context.Context, *AttackRequest) (*AttackResponse, error)
	Heal(context.Context, *EncounterRequest) (*HealResponse, error)
	Flee(context.Context, *EncounterRequest) (*EncounterResponse, error)
	StartDungeon(context.Context, *StartDungeonRequest) (*DungeonRunResponse, error)
	GetDungeonRun(context.Context, *DungeonRunRequest) (*DungeonRunResponse, error)
	SubmitStage(context.Context, *SubmitStageRequest) (*SubmitStageResponse, error)
	Classify(context.Context, *ClassifyRequest) (*ClassifyResponse, error)
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

// GameServiceDesc describes the game service for grpc.Server
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetPlayer", Handler: _GameService_GetPlayer_Handler},
		{MethodName: "SpendSkillPoint", Handler: _GameService_SpendSkillPoint_Handler},
		{MethodName: "UnlockAdvancedSkill", Handler: _GameService_UnlockAdvancedSkill_Handler},
		{MethodName: "EquipWeapon", Handler: _GameService_EquipWeapon_Handler},
		{MethodName: "Rest", Handler: _GameService_Rest_Handler},
		{MethodName: "ResetSave", Handler: _GameService_ResetSave_Handler},
		{MethodName: "StartEncounter", Handler: _GameService_StartEncounter_Handler},
		{MethodName: "GetEncounter", Handler: _GameService_GetEncounter_Handler},
		{MethodName: "Attack", Handler: _GameService_Attack_Handler},
		{MethodName: "Heal", Handler: _GameService_Heal_Handler},
		{MethodName: "Flee", Handler: _GameService_Flee_Handler},
		{MethodName: "StartDungeon", Handler: _GameService_StartDungeon_Handler},
		{MethodName: "GetDungeonRun", Handler: _GameService_GetDungeonRun_Handler},
		{MethodName: "SubmitStage", Handler: _GameService_SubmitStage_Handler},
		{MethodName: "Classify", Handler: _GameService_Classify_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "codequest/v1/game.proto",
}

func _GameService_GetPlayer_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(GetPlayerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).GetPlayer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_GetPlayer_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).GetPlayer(ctx, req.(*GetPlayerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_SpendSkillPoint_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SpendSkillPointRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).SpendSkillPoint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_SpendSkillPoint_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).SpendSkillPoint(ctx, req.(*SpendSkillPointRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_UnlockAdvancedSkill_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(UnlockAdvancedSkillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).UnlockAdvancedSkill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_UnlockAdvancedSkill_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).UnlockAdvancedSkill(ctx, req.(*UnlockAdvancedSkillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_EquipWeapon_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(EquipWeaponRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).EquipWeapon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_EquipWeapon_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).EquipWeapon(ctx, req.(*EquipWeaponRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_Rest_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).Rest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_Rest_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).Rest(ctx, req.(*RestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_ResetSave_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ResetSaveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).ResetSave(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_ResetSave_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).ResetSave(ctx, req.(*ResetSaveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_StartEncounter_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(StartEncounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).StartEncounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_StartEncounter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).StartEncounter(ctx, req.(*StartEncounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_GetEncounter_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(EncounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).GetEncounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_GetEncounter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).GetEncounter(ctx, req.(*EncounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_Attack_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(AttackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).Attack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_Attack_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).Attack(ctx, req.(*AttackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_Heal_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(EncounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).Heal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_Heal_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).Heal(ctx, req.(*EncounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_Flee_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(EncounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).Flee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_Flee_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).Flee(ctx, req.(*EncounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_StartDungeon_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(StartDungeonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).StartDungeon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_StartDungeon_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).StartDungeon(ctx, req.(*StartDungeonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_GetDungeonRun_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(DungeonRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).GetDungeonRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_GetDungeonRun_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).GetDungeonRun(ctx, req.(*DungeonRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_SubmitStage_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SubmitStageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).SubmitStage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_SubmitStage_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).SubmitStage(ctx, req.(*SubmitStageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_Classify_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ClassifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).Classify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_Classify_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).Classify(ctx, req.(*ClassifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}
