package config

// evalConfiguration holds weights and feature toggles for the incremental
// evaluator (material, PST, mobility, pawn structure, endgame terms). The
// defaults are the point values named by the evaluation design; toggles let
// tests or tuning runs isolate a single term.
type evalConfiguration struct {
	UseMobility            bool
	BishopQueenDiagBonus   int16
	RookQueenOrthoBonus    int16
	BishopBatteryBonus     int16
	RookBatteryBonus       int16

	UseBishopPair   bool
	BishopPairBonus int16

	UsePawnEval  bool
	UsePawnCache bool
	PawnCacheSize int

	PawnSupportedBonus int16
	PawnDoubledMalus   int16
	PawnIsolatedMalus  int16
	PawnPassedRankBonus int16

	UseRuleOfTheSquare   bool
	RuleOfTheSquareBonus int16
}

func init() {
	Settings.Eval.UseMobility = true
	Settings.Eval.BishopQueenDiagBonus = 2
	Settings.Eval.RookQueenOrthoBonus = 3
	Settings.Eval.BishopBatteryBonus = 5
	Settings.Eval.RookBatteryBonus = 10

	Settings.Eval.UseBishopPair = true
	Settings.Eval.BishopPairBonus = 50

	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = true
	Settings.Eval.PawnCacheSize = 16

	Settings.Eval.PawnSupportedBonus = 10
	Settings.Eval.PawnDoubledMalus = 20
	Settings.Eval.PawnIsolatedMalus = 20
	Settings.Eval.PawnPassedRankBonus = 20

	Settings.Eval.UseRuleOfTheSquare = true
	Settings.Eval.RuleOfTheSquareBonus = 30
}

func setupEval() {
}
