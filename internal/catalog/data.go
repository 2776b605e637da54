package catalog

import "github.com/tickerhub/tickerhub/pkg/models"

// builtinStocks is the default stock dataset. Symbols are unique.
var builtinStocks = []models.StockSymbol{
	{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Sector: "Consumer Discretionary", Exchange: "NASDAQ"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "META", Name: "Meta Platforms Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Sector: "Consumer Discretionary", Exchange: "NASDAQ"},
	{Symbol: "BRK.B", Name: "Berkshire Hathaway Inc.", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "V", Name: "Visa Inc.", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "MA", Name: "Mastercard Incorporated", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Sector: "Healthcare", Exchange: "NYSE"},
	{Symbol: "UNH", Name: "UnitedHealth Group Incorporated", Sector: "Healthcare", Exchange: "NYSE"},
	{Symbol: "PFE", Name: "Pfizer Inc.", Sector: "Healthcare", Exchange: "NYSE"},
	{Symbol: "LLY", Name: "Eli Lilly and Company", Sector: "Healthcare", Exchange: "NYSE"},
	{Symbol: "XOM", Name: "Exxon Mobil Corporation", Sector: "Energy", Exchange: "NYSE"},
	{Symbol: "CVX", Name: "Chevron Corporation", Sector: "Energy", Exchange: "NYSE"},
	{Symbol: "WMT", Name: "Walmart Inc.", Sector: "Consumer Staples", Exchange: "NYSE"},
	{Symbol: "PG", Name: "Procter & Gamble Company", Sector: "Consumer Staples", Exchange: "NYSE"},
	{Symbol: "KO", Name: "The Coca-Cola Company", Sector: "Consumer Staples", Exchange: "NYSE"},
	{Symbol: "PEP", Name: "PepsiCo Inc.", Sector: "Consumer Staples", Exchange: "NASDAQ"},
	{Symbol: "HD", Name: "The Home Depot Inc.", Sector: "Consumer Discretionary", Exchange: "NYSE"},
	{Symbol: "MCD", Name: "McDonald's Corporation", Sector: "Consumer Discretionary", Exchange: "NYSE"},
	{Symbol: "DIS", Name: "The Walt Disney Company", Sector: "Communication Services", Exchange: "NYSE"},
	{Symbol: "NFLX", Name: "Netflix Inc.", Sector: "Communication Services", Exchange: "NASDAQ"},
	{Symbol: "CMCSA", Name: "Comcast Corporation", Sector: "Communication Services", Exchange: "NASDAQ"},
	{Symbol: "T", Name: "AT&T Inc.", Sector: "Communication Services", Exchange: "NYSE"},
	{Symbol: "VZ", Name: "Verizon Communications Inc.", Sector: "Communication Services", Exchange: "NYSE"},
	{Symbol: "INTC", Name: "Intel Corporation", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "AMD", Name: "Advanced Micro Devices Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "QCOM", Name: "QUALCOMM Incorporated", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "AVGO", Name: "Broadcom Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "TXN", Name: "Texas Instruments Incorporated", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "ORCL", Name: "Oracle Corporation", Sector: "Technology", Exchange: "NYSE"},
	{Symbol: "CRM", Name: "Salesforce Inc.", Sector: "Technology", Exchange: "NYSE"},
	{Symbol: "ADBE", Name: "Adobe Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "CSCO", Name: "Cisco Systems Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "IBM", Name: "International Business Machines Corporation", Sector: "Technology", Exchange: "NYSE"},
	{Symbol: "NOW", Name: "ServiceNow Inc.", Sector: "Technology", Exchange: "NYSE"},
	{Symbol: "UBER", Name: "Uber Technologies Inc.", Sector: "Technology", Exchange: "NYSE"},
	{Symbol: "SHOP", Name: "Shopify Inc.", Sector: "Technology", Exchange: "NYSE"},
	{Symbol: "SQ", Name: "Block Inc.", Sector: "Technology", Exchange: "NYSE"},
	{Symbol: "PYPL", Name: "PayPal Holdings Inc.", Sector: "Financials", Exchange: "NASDAQ"},
	{Symbol: "COIN", Name: "Coinbase Global Inc.", Sector: "Financials", Exchange: "NASDAQ"},
	{Symbol: "BAC", Name: "Bank of America Corporation", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "WFC", Name: "Wells Fargo & Company", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "GS", Name: "The Goldman Sachs Group Inc.", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "MS", Name: "Morgan Stanley", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "BA", Name: "The Boeing Company", Sector: "Industrials", Exchange: "NYSE"},
	{Symbol: "CAT", Name: "Caterpillar Inc.", Sector: "Industrials", Exchange: "NYSE"},
	{Symbol: "GE", Name: "GE Aerospace", Sector: "Industrials", Exchange: "NYSE"},
	{Symbol: "MMM", Name: "3M Company", Sector: "Industrials", Exchange: "NYSE"},
	{Symbol: "UPS", Name: "United Parcel Service Inc.", Sector: "Industrials", Exchange: "NYSE"},
	{Symbol: "F", Name: "Ford Motor Company", Sector: "Consumer Discretionary", Exchange: "NYSE"},
	{Symbol: "GM", Name: "General Motors Company", Sector: "Consumer Discretionary", Exchange: "NYSE"},
	{Symbol: "NKE", Name: "NIKE Inc.", Sector: "Consumer Discretionary", Exchange: "NYSE"},
	{Symbol: "SBUX", Name: "Starbucks Corporation", Sector: "Consumer Discretionary", Exchange: "NASDAQ"},
	{Symbol: "ABNB", Name: "Airbnb Inc.", Sector: "Consumer Discretionary", Exchange: "NASDAQ"},
	{Symbol: "PLTR", Name: "Palantir Technologies Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "LINK", Name: "Interlink Electronics Inc.", Sector: "Technology", Exchange: "NASDAQ"},
}

// builtinCryptos is the default crypto dataset. IDs and symbols are
// unique within the crypto namespace.
var builtinCryptos = []models.CryptoAsset{
	{ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", Category: "Currency"},
	{ID: "ethereum", Symbol: "ETH", Name: "Ethereum", Category: "Smart Contract Platform"},
	{ID: "tether", Symbol: "USDT", Name: "Tether", Category: "Stablecoin"},
	{ID: "binancecoin", Symbol: "BNB", Name: "BNB", Category: "Exchange Token"},
	{ID: "solana", Symbol: "SOL", Name: "Solana", Category: "Smart Contract Platform"},
	{ID: "ripple", Symbol: "XRP", Name: "XRP", Category: "Payments"},
	{ID: "usd-coin", Symbol: "USDC", Name: "USD Coin", Category: "Stablecoin"},
	{ID: "cardano", Symbol: "ADA", Name: "Cardano", Category: "Smart Contract Platform"},
	{ID: "dogecoin", Symbol: "DOGE", Name: "Dogecoin", Category: "Meme"},
	{ID: "avalanche-2", Symbol: "AVAX", Name: "Avalanche", Category: "Smart Contract Platform"},
	{ID: "tron", Symbol: "TRX", Name: "TRON", Category: "Smart Contract Platform"},
	{ID: "polkadot", Symbol: "DOT", Name: "Polkadot", Category: "Interoperability"},
	{ID: "chainlink", Symbol: "LINK", Name: "Chainlink", Category: "Oracle"},
	{ID: "matic-network", Symbol: "MATIC", Name: "Polygon", Category: "Layer 2"},
	{ID: "litecoin", Symbol: "LTC", Name: "Litecoin", Category: "Currency"},
	{ID: "shiba-inu", Symbol: "SHIB", Name: "Shiba Inu", Category: "Meme"},
	{ID: "bitcoin-cash", Symbol: "BCH", Name: "Bitcoin Cash", Category: "Currency"},
	{ID: "uniswap", Symbol: "UNI", Name: "Uniswap", Category: "DeFi"},
	{ID: "stellar", Symbol: "XLM", Name: "Stellar", Category: "Payments"},
	{ID: "monero", Symbol: "XMR", Name: "Monero", Category: "Privacy"},
	{ID: "cosmos", Symbol: "ATOM", Name: "Cosmos Hub", Category: "Interoperability"},
	{ID: "ethereum-classic", Symbol: "ETC", Name: "Ethereum Classic", Category: "Smart Contract Platform"},
	{ID: "filecoin", Symbol: "FIL", Name: "Filecoin", Category: "Storage"},
	{ID: "aptos", Symbol: "APT", Name: "Aptos", Category: "Smart Contract Platform"},
	{ID: "arbitrum", Symbol: "ARB", Name: "Arbitrum", Category: "Layer 2"},
	{ID: "optimism", Symbol: "OP", Name: "Optimism", Category: "Layer 2"},
	{ID: "near", Symbol: "NEAR", Name: "NEAR Protocol", Category: "Smart Contract Platform"},
	{ID: "aave", Symbol: "AAVE", Name: "Aave", Category: "DeFi"},
	{ID: "maker", Symbol: "MKR", Name: "Maker", Category: "DeFi"},
	{ID: "algorand", Symbol: "ALGO", Name: "Algorand", Category: "Smart Contract Platform"},
	{ID: "the-graph", Symbol: "GRT", Name: "The Graph", Category: "Indexing"},
	{ID: "fantom", Symbol: "FTM", Name: "Fantom", Category: "Smart Contract Platform"},
	{ID: "vechain", Symbol: "VET", Name: "VeChain", Category: "Supply Chain"},
	{ID: "hedera-hashgraph", Symbol: "HBAR", Name: "Hedera", Category: "Smart Contract Platform"},
	{ID: "internet-computer", Symbol: "ICP", Name: "Internet Computer", Category: "Smart Contract Platform"},
	{ID: "injective-protocol", Symbol: "INJ", Name: "Injective", Category: "DeFi"},
	{ID: "render-token", Symbol: "RNDR", Name: "Render", Category: "Compute"},
	{ID: "pepe", Symbol: "PEPE", Name: "Pepe", Category: "Meme"},
	{ID: "sui", Symbol: "SUI", Name: "Sui", Category: "Smart Contract Platform"},
	{ID: "toncoin", Symbol: "TON", Name: "Toncoin", Category: "Smart Contract Platform"},
}

// popularStockSymbols and popularCryptoIDs back PopularAssets.
// Fixed curation for the empty-state display: 5 + 5.
var popularStockSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}
var popularCryptoIDs = []string{"bitcoin", "ethereum", "solana", "ripple", "dogecoin"}
