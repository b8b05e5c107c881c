package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		subject TEXT UNIQUE NOT NULL,
		username TEXT UNIQUE NOT NULL,
		profile_image_url TEXT,
		has_accepted_terms BOOLEAN,
		is_guest BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createLinkedIdentityTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE linked_identities (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		type TEXT NOT NULL,
		value TEXT NOT NULL,
		chain_type TEXT,
		client_type TEXT,
		wallet_index INTEGER,
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createFriendEdgeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE friend_edges (
		account_id TEXT NOT NULL,
		friend_id TEXT NOT NULL,
		created_at DATETIME,
		PRIMARY KEY (account_id, friend_id)
	);`)
}

func createPaymentRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payment_requests (
		id TEXT PRIMARY KEY,
		requester_id TEXT NOT NULL,
		payee_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		token_address TEXT NOT NULL,
		token_name TEXT NOT NULL,
		decimals INTEGER NOT NULL,
		chain_id INTEGER NOT NULL,
		chain_name TEXT NOT NULL,
		transaction_type TEXT,
		cleared BOOLEAN NOT NULL DEFAULT 0,
		rejected BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		from_account_id TEXT NOT NULL,
		to_account_id TEXT NOT NULL,
		from_address TEXT NOT NULL,
		to_address TEXT NOT NULL,
		amount TEXT NOT NULL,
		token_address TEXT NOT NULL,
		token_name TEXT NOT NULL,
		decimals INTEGER NOT NULL,
		tx_hash TEXT NOT NULL,
		transaction_type TEXT,
		chain_id INTEGER NOT NULL,
		chain_name TEXT NOT NULL,
		verified_at DATETIME,
		created_at DATETIME
	);`)
}

func createChatMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE chat_messages (
		id TEXT PRIMARY KEY,
		sender_id TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		content TEXT,
		amount TEXT NOT NULL DEFAULT '0',
		message_type TEXT NOT NULL DEFAULT 'message',
		transaction_id TEXT,
		payment_request_id TEXT,
		sent_at DATETIME
	);`)
}

func createAiChatMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE ai_chat_messages (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		account_id TEXT NOT NULL,
		session_name TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createChainTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE chains (
		id TEXT PRIMARY KEY,
		chain_id INTEGER UNIQUE NOT NULL,
		name TEXT NOT NULL,
		rpc_url TEXT,
		is_active BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tokens (
		id TEXT PRIMARY KEY,
		chain_id INTEGER NOT NULL,
		symbol TEXT NOT NULL,
		name TEXT NOT NULL,
		decimals INTEGER NOT NULL,
		contract_address TEXT NOT NULL,
		is_native BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		UNIQUE (chain_id, symbol)
	);`)
}
