// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package tantalum

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() *ExchangeRates {
	return &ExchangeRates{
		Base:      "USD",
		Timestamp: 1756400000,
		Rates: map[string]string{
			"EUR": "0.85",
			"GBP": "0.74",
			"JPY": "147.2",
		},
	}
}

func TestCurrencyConvert(t *testing.T) {
	rates := testRates()

	tests := []struct {
		name     string
		amount   Rat
		from, to string
		expected Rat
	}{
		{"base to rate", RatFromInt64(100), "USD", "EUR", RatFromInt64(85)},
		{"rate to base", RatFromInt64(85), "EUR", "USD", RatFromInt64(100)},
		{"cross rate", RatFromInt64(100), "EUR", "GBP", NewRat64(100*74, 85)},
		{"identity", NewRat64(7, 2), "USD", "USD", NewRat64(7, 2)},
		{"symbol alias", RatFromInt64(100), "$", "€", RatFromInt64(85)},
		{"lowercase alias", RatFromInt64(10), "yen", "usd", NewRat64(100, 1472)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := rates.Convert(test.amount, test.from, test.to)
			require.NoError(t, err)
			assert.True(t, got.Equal(test.expected),
				"Convert(%v, %s, %s) = %v, want %v", test.amount, test.from, test.to, got, test.expected)
		})
	}
}

func TestCurrencyConvertUnknown(t *testing.T) {
	rates := testRates()

	_, err := rates.Convert(RatFromInt64(1), "USD", "XXX")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = rates.Convert(RatFromInt64(1), "XXX", "USD")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestCurrencyBadRate(t *testing.T) {
	rates := testRates()
	rates.Rates["BAD"] = "-1.5"
	_, err := rates.Convert(RatFromInt64(1), "USD", "BAD")
	assert.Error(t, err)

	rates.Rates["WORSE"] = "1,5"
	_, err = rates.Convert(RatFromInt64(1), "USD", "WORSE")
	assert.Error(t, err)
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		input, expected string
	}{
		{"usd", "USD"},
		{"USD", "USD"},
		{"$", "USD"},
		{"€", "EUR"},
		{"£", "GBP"},
		{"¥", "JPY"},
		{"yen", "JPY"},
		{"btc", "BTC"},
		{"chf", "CHF"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, NormalizeCurrency(test.input))
		})
	}
}

func TestExchangeRatesJSON(t *testing.T) {
	data, err := json.Marshal(testRates())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"base": "USD",
		"timestamp": 1756400000,
		"rates": {"EUR": "0.85", "GBP": "0.74", "JPY": "147.2"}
	}`, string(data))

	var loaded ExchangeRates
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, testRates(), &loaded)

	got, err := loaded.Convert(RatFromInt64(100), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, got.Equal(RatFromInt64(85)), "got %v", got)
}

func TestExchangeRatesExpired(t *testing.T) {
	rates := testRates()
	stamp := time.Unix(rates.Timestamp, 0)

	assert.False(t, rates.Expired(stamp.Add(30*time.Minute)))
	assert.True(t, rates.Expired(stamp.Add(2*time.Hour)))
}

func TestParseDecimalRat(t *testing.T) {
	tests := []struct {
		input    string
		expected Rat
		valid    bool
	}{
		{"0.85", NewRat64(17, 20), true},
		{"147.2", NewRat64(736, 5), true},
		{"-12", RatFromInt64(-12), true},
		{"+3.5", NewRat64(7, 2), true},
		{"3.", RatFromInt64(3), true},
		{".5", NewRat64(1, 2), true},
		{"0", RatFromInt64(0), true},
		{"", Rat{}, false},
		{".", Rat{}, false},
		{"1e5", Rat{}, false},
		{"1,5", Rat{}, false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseDecimalRat(test.input)
			if !test.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(test.expected), "ParseDecimalRat(%q) = %v, want %v",
				test.input, got, test.expected)
		})
	}
}
