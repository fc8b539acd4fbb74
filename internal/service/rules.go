package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
)

// ruleContext is everything a rule may look at.
type ruleContext struct {
	request TransactionRequest
	account Account
	today   calendar.Date
	usage   DailyUsage
	limits  Limits
}

// rule returns nil when the request passes.
type rule func(rc *ruleContext) *ValidationError

// rules run in this order after the fail-fast account checks. Every failure is reported.
var rules = []rule{
	frozenAccountRule,
	positiveAmountRule,
	openingDateRule,
	knownDirectionRule,
	knownCategoryRule,
	creditCategoryRule,
	debitCategoryRule,
	dailyDebitLimitRule,
	maxTransactionsRule,
}

// Validate checks req against account and the ledger. It returns nil when the request is acceptable.
func Validate(req TransactionRequest, account *Account, transactions []Transaction, today calendar.Date, limits Limits) []ValidationError {
	if account == nil {
		return []ValidationError{{
			Code:    CodeNoAccount,
			Message: "No account selected",
		}}
	}
	if account.Status == AccountStatusInactive {
		return []ValidationError{{
			Code:    CodeAccountInactive,
			Message: "This account is inactive and cannot accept transactions",
		}}
	}

	rc := &ruleContext{
		request: req,
		account: *account,
		today:   today,
		usage:   dailyUsage(*account, transactions, today, limits),
		limits:  limits,
	}

	var errs []ValidationError
	for _, r := range rules {
		if err := r(rc); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

// dailyUsage sums the completed activity of account dated day.
func dailyUsage(account Account, transactions []Transaction, day calendar.Date, limits Limits) DailyUsage {
	usage := DailyUsage{Date: day, DebitTotal: decimal.Zero}
	for _, tx := range transactions {
		if tx.AccountID != account.ID || tx.Status != StatusCompleted || !tx.Date.Equal(day) {
			continue
		}
		usage.Count++
		if tx.Direction == DirectionDebit {
			usage.DebitTotal = usage.DebitTotal.Add(tx.Amount)
		}
	}

	usage.RemainingDebit = decimal.Max(limits.DailyDebitLimit.Sub(usage.DebitTotal), decimal.Zero)
	usage.RemainingTransactions = max(limits.MaxTransactionsPerDay-usage.Count, 0)
	return usage
}

func frozenAccountRule(rc *ruleContext) *ValidationError {
	if rc.account.Status != AccountStatusFrozen || rc.request.Direction != DirectionDebit {
		return nil
	}
	return &ValidationError{
		Code:    CodeAccountFrozen,
		Message: "This account is frozen. Only credits are permitted",
	}
}

func positiveAmountRule(rc *ruleContext) *ValidationError {
	if rc.request.Amount.IsPositive() {
		return nil
	}
	return &ValidationError{
		Code:    CodeInvalidAmount,
		Message: "Amount must be greater than zero",
		Field:   "amount",
	}
}

func openingDateRule(rc *ruleContext) *ValidationError {
	if !rc.request.Date.Before(rc.account.OpeningDate) {
		return nil
	}
	return &ValidationError{
		Code:    CodeDateBeforeOpening,
		Message: fmt.Sprintf("Transaction date cannot be before the account opening date (%s)", rc.account.OpeningDate),
		Field:   "date",
	}
}

func knownDirectionRule(rc *ruleContext) *ValidationError {
	if rc.request.Direction.IsValid() {
		return nil
	}
	return &ValidationError{
		Code:    CodeInvalidCategory,
		Message: fmt.Sprintf("Unknown transaction direction '%s'", rc.request.Direction),
		Field:   "direction",
	}
}

func knownCategoryRule(rc *ruleContext) *ValidationError {
	if rc.request.Category.IsValid() {
		return nil
	}
	return &ValidationError{
		Code:    CodeInvalidCategory,
		Message: fmt.Sprintf("Unknown transaction category '%s'", rc.request.Category),
		Field:   "category",
	}
}

func creditCategoryRule(rc *ruleContext) *ValidationError {
	if rc.request.Direction != DirectionCredit || !rc.request.Category.DebitOnly() {
		return nil
	}
	return &ValidationError{
		Code:    CodeInvalidCategory,
		Message: fmt.Sprintf("Category '%s' cannot be used for credit transactions", rc.request.Category),
		Field:   "category",
	}
}

func debitCategoryRule(rc *ruleContext) *ValidationError {
	if rc.request.Direction != DirectionDebit || !rc.request.Category.CreditOnly() {
		return nil
	}
	return &ValidationError{
		Code:    CodeInvalidCategory,
		Message: fmt.Sprintf("Category '%s' cannot be used for debit transactions", rc.request.Category),
		Field:   "category",
	}
}

func dailyDebitLimitRule(rc *ruleContext) *ValidationError {
	if rc.request.Direction != DirectionDebit || !rc.request.Date.Equal(rc.today) {
		return nil
	}
	if !rc.usage.DebitTotal.Add(rc.request.Amount).GreaterThan(rc.limits.DailyDebitLimit) {
		return nil
	}
	return &ValidationError{
		Code: CodeDailyLimitExceeded,
		Message: fmt.Sprintf("Daily debit limit of %s %s exceeded. Remaining allowance today: %s %s",
			rc.account.Currency, rc.limits.DailyDebitLimit.StringFixed(2),
			rc.account.Currency, rc.usage.RemainingDebit.StringFixed(2)),
		Field: "amount",
	}
}

func maxTransactionsRule(rc *ruleContext) *ValidationError {
	if !rc.request.Date.Equal(rc.today) || rc.usage.Count < rc.limits.MaxTransactionsPerDay {
		return nil
	}
	return &ValidationError{
		Code:    CodeMaxTransactionsExceeded,
		Message: fmt.Sprintf("Maximum of %d transactions per day reached", rc.limits.MaxTransactionsPerDay),
	}
}
