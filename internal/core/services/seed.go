package services

import "github.com/moneynest/money_tracker_app/internal/core/domain"

// Default seed data, applied only when a collection is genuinely empty at
// first load.

type accountSeed struct {
	name  string
	emoji string
}

var defaultAccounts = []accountSeed{
	{name: "Cash", emoji: "💵"},
	{name: "Bank Account", emoji: "🏦"},
	{name: "Credit Card", emoji: "💳"},
	{name: "Savings", emoji: "🐖"},
}

type categorySeed struct {
	name         string
	emoji        string
	categoryType domain.CategoryType
}

var defaultCategories = []categorySeed{
	{name: "Food & Drinks", emoji: "🍔", categoryType: domain.CategoryExpense},
	{name: "Groceries", emoji: "🛒", categoryType: domain.CategoryExpense},
	{name: "Transport", emoji: "🚗", categoryType: domain.CategoryExpense},
	{name: "Shopping", emoji: "🛍️", categoryType: domain.CategoryExpense},
	{name: "Entertainment", emoji: "🎬", categoryType: domain.CategoryExpense},
	{name: "Bills & Utilities", emoji: "💡", categoryType: domain.CategoryExpense},
	{name: "Health", emoji: "🏥", categoryType: domain.CategoryExpense},
	{name: "Education", emoji: "📚", categoryType: domain.CategoryExpense},
	{name: "Travel", emoji: "✈️", categoryType: domain.CategoryExpense},
	{name: "Other", emoji: "📦", categoryType: domain.CategoryExpense},
	{name: "Salary", emoji: "💰", categoryType: domain.CategoryIncome},
	{name: "Business", emoji: "💼", categoryType: domain.CategoryIncome},
	{name: "Gifts", emoji: "🎁", categoryType: domain.CategoryIncome},
	{name: "Investments", emoji: "📈", categoryType: domain.CategoryIncome},
	{name: "Transfer", emoji: "🔁", categoryType: domain.CategoryTransfer},
}
