package entities

// CombatOutcome is the result of one player attack. DamageDealt and SelfDamage are
// never both positive.
type CombatOutcome struct {
	DamageDealt int    `json:"damage_dealt"`
	IsCrit      bool   `json:"is_crit"`
	SelfDamage  int    `json:"self_damage"`
	Message     string `json:"message"`
}

// ExecutionResult is what the code execution gateway reports for one run
type ExecutionResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output"`
	Error   string `json:"error,omitempty"`
}
