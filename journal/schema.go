package journal

// Schema creates the journal tables. It runs on every open; CREATE IF NOT
// EXISTS keeps it idempotent so one database accumulates many sessions.
const Schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	start_time DATETIME NOT NULL,
	end_time DATETIME NOT NULL,
	initial_balance REAL NOT NULL,
	final_balance REAL NOT NULL,
	total_trades INTEGER NOT NULL,
	wins INTEGER NOT NULL,
	losses INTEGER NOT NULL,
	pushes INTEGER NOT NULL,
	win_rate REAL NOT NULL,
	total_pl REAL NOT NULL,
	roi_percent REAL NOT NULL,
	expectancy REAL NOT NULL,
	max_drawdown_percent REAL NOT NULL,
	stop_reason TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_sessions_start_time ON sessions(start_time);

CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	time DATETIME NOT NULL,
	type TEXT NOT NULL,
	outcome TEXT NOT NULL,
	risk REAL NOT NULL,
	payout REAL NOT NULL,
	profit_loss REAL NOT NULL,
	balance_after REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_session_id ON trades(session_id);
`
