package helpers

import "github.com/metatx/transactions-api/internal/constants"

// Stages accepted in STAGE. dev and prod read database credentials from the RDS secret.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = constants.DevEnvironment
	StageLocal = "local"
)

func IsValidStage(stage string) bool {
	return stage == StageProd || stage == StageDev || stage == StageLocal
}
