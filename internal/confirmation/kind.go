package confirmation

import "fmt"

// Kind identifies the transaction type carried inside a confirmation
// code. The enumeration is closed; anything else fails tag lookup.
type Kind string

const (
	KindDeposit  Kind = "DEPOSIT"
	KindWithdraw Kind = "WITHDRAW"
	KindInterest Kind = "INTEREST"
	KindRejected Kind = "REJECTED"
)

var kindTags = map[Kind]string{
	KindDeposit:  "D",
	KindWithdraw: "W",
	KindInterest: "I",
	KindRejected: "X",
}

// Tag returns the single-character code embedded in generated
// confirmation codes.
func (k Kind) Tag() (string, error) {
	tag, ok := kindTags[k]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
	return tag, nil
}

// IsRejected reports whether the confirmation code records a declined
// withdrawal.
func IsRejected(code string) bool {
	return len(code) >= 2 && code[:2] == kindTags[KindRejected]+"-"
}
