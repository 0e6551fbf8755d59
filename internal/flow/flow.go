package flow

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/Jupiter-DevRel/go-examples/internal/jupiter"
	"github.com/Jupiter-DevRel/go-examples/internal/wallet"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
)

// Runner executes one trade flow end to end: quote or order from the
// Jupiter API, local signing, submission, confirmation. It holds no
// state between runs.
type Runner struct {
	Jupiter *jupiter.Client
	Wallet  *wallet.Wallet
	Logger  *logrus.Logger

	// Optional integrator fee, applied where the flow supports it.
	FeeAccount string
	FeeBps     uint16

	Commitment     string        // confirmation commitment, default "confirmed"
	ConfirmTimeout time.Duration // default 60s
}

// TradeRequest is the input to every flow. Trigger and Recurring carry
// their extra parameters in the corresponding sub-struct.
type TradeRequest struct {
	InputMint   string
	OutputMint  string
	Amount      uint64 // atomic units of the input mint
	SlippageBps uint16

	Trigger   *TriggerParams
	Recurring *RecurringParams
}

// TriggerParams describes a limit order: sell MakingAmount of the
// input mint once TakingAmount of the output mint can be taken.
type TriggerParams struct {
	MakingAmount uint64
	TakingAmount uint64
	ExpiredAt    time.Time // zero means no expiry
}

// RecurringParams describes a time-based DCA schedule.
type RecurringParams struct {
	InAmount       uint64 // total input amount across all orders
	NumberOfOrders uint64
	Interval       time.Duration
}

// Result is the terminal outcome of a successful flow.
type Result struct {
	Signature string
	Status    string
	Duration  time.Duration
}

func (r *Runner) log() *logrus.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return logrus.StandardLogger()
}

func (r *Runner) commitment() string {
	if r.Commitment != "" {
		return r.Commitment
	}
	return "confirmed"
}

func (r *Runner) confirmTimeout() time.Duration {
	if r.ConfirmTimeout > 0 {
		return r.ConfirmTimeout
	}
	return 60 * time.Second
}

func (r *Runner) feeEnabled() bool {
	return r.FeeAccount != "" && r.FeeBps > 0
}

// decodeTransaction turns a base64 payload from the API into a
// transaction. Corrupted input always fails here, before any signing.
func decodeTransaction(payload string) (*solana.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return tx, nil
}

func (r *Runner) signTx(tx *solana.Transaction) error {
	if err := r.Wallet.SignTx(tx); err != nil {
		return &SigningError{Err: err}
	}
	return nil
}

// encodeTransaction serializes a signed transaction back to base64 for
// the execute endpoints.
func encodeTransaction(tx *solana.Transaction) (string, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", &SigningError{Err: err}
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// submitAndConfirm sends a signed transaction over RPC and polls until
// the configured commitment is reached.
func (r *Runner) submitAndConfirm(ctx context.Context, tx *solana.Transaction, start time.Time) (*Result, error) {
	sig, err := r.Wallet.SendTx(ctx, tx, nil)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}

	r.log().WithField("signature", sig).Info("transaction submitted")

	if err := r.Wallet.ConfirmTransaction(ctx, sig, r.commitment(), r.confirmTimeout()); err != nil {
		return nil, &SubmissionError{Reason: "signature " + sig + ": " + err.Error(), Err: err}
	}

	return &Result{
		Signature: sig,
		Status:    r.commitment(),
		Duration:  time.Since(start),
	}, nil
}
