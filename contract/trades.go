package contract

// -----------------------------------------------------------------------------
// Trade Recording
// -----------------------------------------------------------------------------

// RecordTrade credits trade notional to the signer's rolling window. When no
// window is open (first trade, or the window length elapsed) the accumulator
// resets to the amount and the window restarts; otherwise the amount is
// added. Accumulate-and-reset bounds storage; the cap and spacing guards on
// GlobalState are the wash-trading defense.
func RecordTrade(args *RecordTradeArgs) *Trader {
	if args.Amount <= 0 {
		abortWith(SymInvalidAmount, "trade amount %d", args.Amount)
	}
	gs := loadGlobalState()
	now := nowUnix()
	trader := loadOrCreateTrader(getSenderAddress())

	if args.Amount > gs.MaxTradeAmount {
		abortWith(SymWashTrade, "amount %d above cap %d", args.Amount, gs.MaxTradeAmount)
	}
	if trader.LastTradeAt > 0 && now-trader.LastTradeAt < gs.MinTradeGapSecs {
		abortWith(SymTooFrequent, "only %ds since last trade", now-trader.LastTradeAt)
	}

	if trader.WindowStart == 0 || now >= trader.WindowStart+FallbackWindowSecs {
		trader.RollingVolume = args.Amount
		trader.WindowStart = now
	} else {
		trader.RollingVolume = checkedAdd(trader.RollingVolume, args.Amount)
	}
	// last-trade timestamp is monotonically non-decreasing; the block clock
	// never runs backwards within the guard above.
	trader.LastTradeAt = now
	saveTrader(trader)

	emitTradeRecorded(AddressToString(trader.Owner), args.Amount, trader.RollingVolume)
	return trader
}
