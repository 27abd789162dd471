package search

// DefaultCatalog is a curated set of widely traded symbols. It is not a
// universe list; unknown symbols still resolve through the data provider.
func DefaultCatalog() []Stock {
	return []Stock{
		{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology", Exchange: "NASDAQ"},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Sector: "Technology", Exchange: "NASDAQ"},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Sector: "Technology", Exchange: "NASDAQ"},
		{Symbol: "AMZN", Name: "Amazon.com Inc.", Sector: "Consumer Cyclical", Exchange: "NASDAQ"},
		{Symbol: "TSLA", Name: "Tesla Inc.", Sector: "Consumer Cyclical", Exchange: "NASDAQ"},
		{Symbol: "META", Name: "Meta Platforms Inc.", Sector: "Technology", Exchange: "NASDAQ"},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Sector: "Technology", Exchange: "NASDAQ"},
		{Symbol: "NFLX", Name: "Netflix Inc.", Sector: "Communication Services", Exchange: "NASDAQ"},
		{Symbol: "AMD", Name: "Advanced Micro Devices", Sector: "Technology", Exchange: "NASDAQ"},
		{Symbol: "INTC", Name: "Intel Corporation", Sector: "Technology", Exchange: "NASDAQ"},
		{Symbol: "CRM", Name: "Salesforce Inc.", Sector: "Technology", Exchange: "NYSE"},
		{Symbol: "ORCL", Name: "Oracle Corporation", Sector: "Technology", Exchange: "NYSE"},
		{Symbol: "ADBE", Name: "Adobe Inc.", Sector: "Technology", Exchange: "NASDAQ"},
		{Symbol: "PYPL", Name: "PayPal Holdings", Sector: "Financial Services", Exchange: "NASDAQ"},
		{Symbol: "DIS", Name: "The Walt Disney Company", Sector: "Communication Services", Exchange: "NYSE"},
		{Symbol: "V", Name: "Visa Inc.", Sector: "Financial Services", Exchange: "NYSE"},
		{Symbol: "MA", Name: "Mastercard Incorporated", Sector: "Financial Services", Exchange: "NYSE"},
		{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Sector: "Financial Services", Exchange: "NYSE"},
		{Symbol: "BAC", Name: "Bank of America", Sector: "Financial Services", Exchange: "NYSE"},
		{Symbol: "WFC", Name: "Wells Fargo & Company", Sector: "Financial Services", Exchange: "NYSE"},
		{Symbol: "GS", Name: "Goldman Sachs Group", Sector: "Financial Services", Exchange: "NYSE"},
		{Symbol: "MS", Name: "Morgan Stanley", Sector: "Financial Services", Exchange: "NYSE"},
		{Symbol: "JNJ", Name: "Johnson & Johnson", Sector: "Healthcare", Exchange: "NYSE"},
		{Symbol: "PFE", Name: "Pfizer Inc.", Sector: "Healthcare", Exchange: "NYSE"},
		{Symbol: "UNH", Name: "UnitedHealth Group", Sector: "Healthcare", Exchange: "NYSE"},
		{Symbol: "KO", Name: "The Coca-Cola Company", Sector: "Consumer Defensive", Exchange: "NYSE"},
		{Symbol: "PEP", Name: "PepsiCo Inc.", Sector: "Consumer Defensive", Exchange: "NASDAQ"},
		{Symbol: "WMT", Name: "Walmart Inc.", Sector: "Consumer Defensive", Exchange: "NYSE"},
		{Symbol: "HD", Name: "The Home Depot", Sector: "Consumer Cyclical", Exchange: "NYSE"},
		{Symbol: "NKE", Name: "Nike Inc.", Sector: "Consumer Cyclical", Exchange: "NYSE"},
		{Symbol: "MCD", Name: "McDonald's Corporation", Sector: "Consumer Cyclical", Exchange: "NYSE"},
		{Symbol: "SBUX", Name: "Starbucks Corporation", Sector: "Consumer Cyclical", Exchange: "NASDAQ"},
		{Symbol: "CVX", Name: "Chevron Corporation", Sector: "Energy", Exchange: "NYSE"},
		{Symbol: "XOM", Name: "Exxon Mobil Corporation", Sector: "Energy", Exchange: "NYSE"},
		{Symbol: "BA", Name: "The Boeing Company", Sector: "Industrials", Exchange: "NYSE"},
		{Symbol: "CAT", Name: "Caterpillar Inc.", Sector: "Industrials", Exchange: "NYSE"},
		{Symbol: "RELIANCE.NS", Name: "Reliance Industries", Sector: "Energy", Exchange: "NSE"},
		{Symbol: "TCS.NS", Name: "Tata Consultancy Services", Sector: "Technology", Exchange: "NSE"},
		{Symbol: "SHOP.TO", Name: "Shopify Inc.", Sector: "Technology", Exchange: "TSX"},
		{Symbol: "0700.HK", Name: "Tencent Holdings", Sector: "Communication Services", Exchange: "HKEX"},
		{Symbol: "9988.HK", Name: "Alibaba Group Holding", Sector: "Consumer Cyclical", Exchange: "HKEX"},
	}
}
