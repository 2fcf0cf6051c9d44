// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	enginemock "github.com/KirkDiggler/codequest/internal/engine/mock"
	"github.com/KirkDiggler/codequest/internal/entities"
	sandboxmock "github.com/KirkDiggler/codequest/internal/sandbox/mock"
)

// d100 is the loot chance die
const d100 = 100

// ExpectAnyPublish accepts every event the engine is asked to publish
func ExpectAnyPublish(mockEngine *enginemock.MockEngine) {
	mockEngine.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// ExpectStagePass sets up a submission that runs cleanly followed by a validation
// script that prints the pass token
func ExpectStagePass(mockSession *sandboxmock.MockSession, code string) {
	gomock.InOrder(
		mockSession.EXPECT().Execute(gomock.Any(), code).
			Return(&entities.ExecutionResult{Success: true}, nil),
		mockSession.EXPECT().Execute(gomock.Any(), gomock.Any()).
			Return(&entities.ExecutionResult{Success: true, Output: "CORRECT\n"}, nil),
	)
}

// ExpectStageOutput sets up a submission that runs cleanly followed by a validation
// script that prints output
func ExpectStageOutput(mockSession *sandboxmock.MockSession, code, output string) {
	gomock.InOrder(
		mockSession.EXPECT().Execute(gomock.Any(), code).
			Return(&entities.ExecutionResult{Success: true}, nil),
		mockSession.EXPECT().Execute(gomock.Any(), gomock.Any()).
			Return(&entities.ExecutionResult{Success: true, Output: output}, nil),
	)
}

// ExpectStageCrash sets up a submission that fails with message; validation must not run
func ExpectStageCrash(mockSession *sandboxmock.MockSession, code, message string) {
	mockSession.EXPECT().Execute(gomock.Any(), code).
		Return(&entities.ExecutionResult{Success: false, Error: message}, nil).
		Times(1)
}

// ExpectNoLoot rolls a d100 above any sane loot chance
func ExpectNoLoot(mockRoller *MockRoller) {
	mockRoller.EXPECT().Roll(d100).Return(d100, nil)
}

// ExpectLoot rolls a loot drop and then picks the pick'th (1-based) weapon of the pool
func ExpectLoot(mockRoller *MockRoller, poolSize, pick int) {
	gomock.InOrder(
		mockRoller.EXPECT().Roll(d100).Return(1, nil),
		mockRoller.EXPECT().Roll(poolSize).Return(pick, nil),
	)
}

// ExpectGatewayRun sets up one battle submission
func ExpectGatewayRun(mockGateway *sandboxmock.MockGateway, code string, result entities.ExecutionResult) {
	mockGateway.EXPECT().Execute(gomock.Any(), code).Return(&result, nil)
}
