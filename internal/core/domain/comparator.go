package domain

// AccountComparator orders two accounts. It matches the signature expected by slices.SortFunc.
type AccountComparator func(a, b *Account) int

// OfBalances compares accounts by balance only. Transaction history and identity
// are ignored, so two distinct accounts holding 10.00 compare equal.
func OfBalances() AccountComparator {
	return func(a, b *Account) int {
		return a.Balance().Cmp(b.Balance())
	}
}

// SameBalance reports whether two accounts are equal under OfBalances.
func SameBalance(a, b *Account) bool {
	return OfBalances()(a, b) == 0
}
