package respond

import (
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
)

// ProofRespond acknowledges an accepted proof-of-payment upload.
type ProofRespond struct {
	ProofOfPayment model.Proof `json:"proof_of_payment"`
	URL            string      `json:"url"`
}
