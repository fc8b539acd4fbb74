package service

import (
	"github.com/shopspring/decimal"
)

// CalculateBalance derives the balance of account from its opening balance and its completed
// transactions. Records of other accounts and records in any other status are ignored.
func CalculateBalance(account Account, transactions []Transaction) decimal.Decimal {
	balance := account.OpeningBalance
	for _, tx := range transactions {
		if tx.Status != StatusCompleted || tx.AccountID != account.ID {
			continue
		}
		balance = balance.Add(tx.Signed())
	}
	return balance
}
