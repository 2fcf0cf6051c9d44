package v1

import (
	"context"

	"google.golang.org/grpc"
)

// GameServiceClient is the client API for the game service
type GameServiceClient interface {
	GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*PlayerResponse, error)
	SpendSkillPoint(ctx context.Context, in *SpendSkillPointRequest, opts ...grpc.CallOption) (*PlayerResponse, error)
	UnlockAdvancedSkill(ctx context.Context, in *UnlockAdvancedSkillRequest, opts ...grpc.CallOption) (*UnlockAdvancedSkillResponse, error)
	EquipWeapon(ctx context.Context, in *EquipWeaponRequest, opts ...grpc.CallOption) (*PlayerResponse, error)
	Rest(ctx context.Context, in *RestRequest, opts ...grpc.CallOption) (*RestResponse, error)
	ResetSave(ctx context.Context, in *ResetSaveRequest, opts ...grpc.CallOption) (*PlayerResponse, error)
	StartEncounter(ctx context.Context, in *StartEncounterRequest, opts ...grpc.CallOption) (*EncounterResponse, error)
	GetEncounter(ctx context.Context, in *EncounterRequest, opts ...grpc.CallOption) (*EncounterResponse, error)
	Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error)
	Heal(ctx context.Context, in *EncounterRequest, opts ...grpc.CallOption) (*HealResponse, error)
	Flee(ctx context.Context, in *EncounterRequest, opts ...grpc.CallOption) (*EncounterResponse, error)
	StartDungeon(ctx context.Context, in *StartDungeonRequest, opts ...grpc.CallOption) (*DungeonRunResponse, error)
	GetDungeonRun(ctx context.Context, in *DungeonRunRequest, opts ...grpc.CallOption) (*DungeonRunResponse, error)
	SubmitStage(ctx context.Context, in *SubmitStageRequest, opts ...grpc.CallOption) (*SubmitStageResponse, error)
	Classify(ctx context.Context, in *ClassifyRequest, opts ...grpc.CallOption) (*ClassifyResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient creates a client that always uses the JSON codec
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func (c *gameServiceClient) invoke(ctx context.Context, fullMethod string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	return c.cc.Invoke(ctx, fullMethod, in, out, opts...)
}

func (c *gameServiceClient) GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	out := new(PlayerResponse)
	if err := c.invoke(ctx, GameService_GetPlayer_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) SpendSkillPoint(ctx context.Context, in *SpendSkillPointRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	out := new(PlayerResponse)
	if err := c.invoke(ctx, GameService_SpendSkillPoint_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) UnlockAdvancedSkill(ctx context.Context, in *UnlockAdvancedSkillRequest, opts ...grpc.CallOption) (*UnlockAdvancedSkillResponse, error) {
	out := new(UnlockAdvancedSkillResponse)
	if err := c.invoke(ctx, GameService_UnlockAdvancedSkill_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) EquipWeapon(ctx context.Context, in *EquipWeaponRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	out := new(PlayerResponse)
	if err := c.invoke(ctx, GameService_EquipWeapon_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Rest(ctx context.Context, in *RestRequest, opts ...grpc.CallOption) (*RestResponse, error) {
	out := new(RestResponse)
	if err := c.invoke(ctx, GameService_Rest_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) ResetSave(ctx context.Context, in *ResetSaveRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	out := new(PlayerResponse)
	if err := c.invoke(ctx, GameService_ResetSave_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) StartEncounter(ctx context.Context, in *StartEncounterRequest, opts ...grpc.CallOption) (*EncounterResponse, error) {
	out := new(EncounterResponse)
	if err := c.invoke(ctx, GameService_StartEncounter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetEncounter(ctx context.Context, in *EncounterRequest, opts ...grpc.CallOption) (*EncounterResponse, error) {
	out := new(EncounterResponse)
	if err := c.invoke(ctx, GameService_GetEncounter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error) {
	out := new(AttackResponse)
	if err := c.invoke(ctx, GameService_Attack_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Heal(ctx context.Context, in *EncounterRequest, opts ...grpc.CallOption) (*HealResponse, error) {
	out := new(HealResponse)
	if err := c.invoke(ctx, GameService_Heal_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Flee(ctx context.Context, in *EncounterRequest, opts ...grpc.CallOption) (*EncounterResponse, error) {
	out := new(EncounterResponse)
	if err := c.invoke(ctx, GameService_Flee_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) StartDungeon(ctx context.Context, in *StartDungeonRequest, opts ...grpc.CallOption) (*DungeonRunResponse, error) {
	out := new(DungeonRunResponse)
	if err := c.invoke(ctx, GameService_StartDungeon_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetDungeonRun(ctx context.Context, in *DungeonRunRequest, opts ...grpc.CallOption) (*DungeonRunResponse, error) {
	out := new(DungeonRunResponse)
	if err := c.invoke(ctx, GameService_GetDungeonRun_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) SubmitStage(ctx context.Context, in *SubmitStageRequest, opts ...grpc.CallOption) (*SubmitStageResponse, error) {
	out := new(SubmitStageResponse)
	if err := c.invoke(ctx, GameService_SubmitStage_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Classify(ctx context.Context, in *ClassifyRequest, opts ...grpc.CallOption) (*ClassifyResponse, error) {
	out := new(ClassifyResponse)
	if err := c.invoke(ctx, GameService_Classify_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
