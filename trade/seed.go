package trade

import "time"

// Seed returns the fixed dataset loaded at startup.
func Seed() []Trade {
	return []Trade{
		{
			AssetClass:     "Equity",
			Counterparty:   "HDFC Bank",
			InstrumentID:   "RELIANCE",
			InstrumentName: "Reliance Industries Ltd.",
			TradeDateTime:  time.Date(2023, 4, 23, 11, 30, 0, 0, time.UTC),
			TradeDetails:   TradeDetails{BuySellIndicator: Buy, Price: 1000.0, Quantity: 100},
			TradeID:        "1",
			Trader:         "Rajesh",
		},
		{
			AssetClass:     "Commodity",
			Counterparty:   "SBI Bank",
			InstrumentID:   "GOLD",
			InstrumentName: "Gold",
			TradeDateTime:  time.Date(2023, 4, 24, 15, 0, 0, 0, time.UTC),
			TradeDetails:   TradeDetails{BuySellIndicator: Sell, Price: 3000.0, Quantity: 10},
			TradeID:        "2",
			Trader:         "Suresh",
		},
		{
			AssetClass:     "Currency",
			Counterparty:   "SBI Bank",
			InstrumentID:   "INR",
			InstrumentName: "Indian Rupee",
			TradeDateTime:  time.Date(2023, 4, 25, 9, 30, 0, 0, time.UTC),
			TradeDetails:   TradeDetails{BuySellIndicator: Buy, Price: 2000.0, Quantity: 1000},
			TradeID:        "3",
			Trader:         "Amit",
		},
		{
			AssetClass:     "Stocks",
			Counterparty:   "Kotak Bank",
			InstrumentID:   "NIFTY50",
			InstrumentName: "Nifty 50 Index",
			TradeDateTime:  time.Date(2023, 4, 26, 14, 0, 0, 0, time.UTC),
			TradeDetails:   TradeDetails{BuySellIndicator: Sell, Price: 1500.0, Quantity: 10},
			TradeID:        "4",
			Trader:         "Vikram",
		},
		{
			AssetClass:     "Bond",
			Counterparty:   "Axis Bank",
			InstrumentID:   "SBIN",
			InstrumentName: "State Bank of India Bond",
			TradeDateTime:  time.Date(2023, 4, 27, 11, 0, 0, 0, time.UTC),
			TradeDetails:   TradeDetails{BuySellIndicator: Buy, Price: 1200.0, Quantity: 100},
			TradeID:        "5",
			Trader:         "Manish Singh",
		},
	}
}
