package flow

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/Jupiter-DevRel/go-examples/internal/jupiter"
	"github.com/gagliardetto/solana-go"
)

// SwapWithInstructions runs the instruction-set variant: instead of an
// assembled transaction, the API returns raw instructions which are
// compiled locally into a v0 transaction against the returned address
// lookup tables.
func (r *Runner) SwapWithInstructions(ctx context.Context, req TradeRequest) (*Result, error) {
	start := time.Now()

	quote, err := r.quote(ctx, req)
	if err != nil {
		return nil, err
	}

	user := r.Wallet.Address()
	ixReq := jupiter.SwapInstructionsRequest{
		QuoteResponse:     quote,
		UserPublicKey:     user,
		Payer:             user,
		InstructionFormat: "json",
	}
	if r.feeEnabled() {
		ixReq.FeeAccount = r.FeeAccount
	}

	resp, err := r.Jupiter.SwapInstructions(ctx, ixReq)
	if err != nil {
		return nil, wrapAPIError("swap-instructions", err)
	}

	ordered := resp.Ordered()
	if len(ordered) == 0 {
		return nil, &ParseError{
			Op:  "swap-instructions",
			Err: errors.New("no instructions returned; check amount and slippage"),
		}
	}

	ixs := make([]solana.Instruction, 0, len(ordered))
	for _, apiIx := range ordered {
		ix, err := convertInstruction(apiIx)
		if err != nil {
			return nil, err
		}
		ixs = append(ixs, ix)
	}

	tables, err := r.Wallet.GetLookupTables(ctx, resp.AddressLookupTableAddresses)
	if err != nil {
		return nil, &RemoteError{Op: "lookup tables", Err: err}
	}

	blockhash, err := r.Wallet.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, &RemoteError{Op: "latest blockhash", Err: err}
	}

	tx, err := solana.NewTransaction(
		ixs,
		blockhash,
		solana.TransactionPayer(r.Wallet.PublicKey()),
		solana.TransactionAddressTables(tables),
	)
	if err != nil {
		return nil, &SigningError{Err: fmt.Errorf("compiling transaction: %w", err)}
	}

	if err := r.signTx(tx); err != nil {
		return nil, err
	}

	return r.submitAndConfirm(ctx, tx, start)
}

// convertInstruction maps an API instruction to a solana-go one. The
// legacy compiled form cannot be assembled locally and is rejected.
func convertInstruction(apiIx jupiter.Instruction) (solana.Instruction, error) {
	if apiIx.Legacy() {
		return nil, &DecodeError{
			Err: errors.New("legacy compiled instruction returned; request the JSON instruction format"),
		}
	}

	programID, err := solana.PublicKeyFromBase58(apiIx.ProgramID)
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("invalid program id %q: %w", apiIx.ProgramID, err)}
	}

	accounts := make(solana.AccountMetaSlice, 0, len(apiIx.Accounts))
	for _, acc := range apiIx.Accounts {
		pk, err := solana.PublicKeyFromBase58(acc.Pubkey)
		if err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("invalid account %q: %w", acc.Pubkey, err)}
		}
		accounts = append(accounts, solana.NewAccountMeta(pk, acc.IsWritable, acc.IsSigner))
	}

	data, err := base64.StdEncoding.DecodeString(apiIx.Data)
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("invalid instruction data: %w", err)}
	}

	return solana.NewInstruction(programID, accounts, data), nil
}
