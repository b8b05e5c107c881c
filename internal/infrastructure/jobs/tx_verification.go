package jobs

import (
	"context"
	"log"
	"time"

	"pocketpay.backend/internal/domain/repositories"
	"pocketpay.backend/internal/infrastructure/blockchain"
	"pocketpay.backend/internal/metrics"
)

// TxVerificationJob stamps ledger rows once their transaction receipt is
// observed on chain. Rows whose receipt reverted are left unverified; the
// ledger itself is never mutated beyond the stamp.
type TxVerificationJob struct {
	transactions repositories.TransactionRepository
	clients      *blockchain.ClientFactory
	interval     time.Duration
	batch        int
	stop         chan struct{}
}

func NewTxVerificationJob(transactions repositories.TransactionRepository, clients *blockchain.ClientFactory, interval time.Duration, batch int) *TxVerificationJob {
	if interval <= 0 {
		interval = time.Minute
	}
	if batch <= 0 {
		batch = 50
	}
	return &TxVerificationJob{
		transactions: transactions,
		clients:      clients,
		interval:     interval,
		batch:        batch,
		stop:         make(chan struct{}),
	}
}

func (j *TxVerificationJob) Start(ctx context.Context) {
	log.Println("🕐 Starting transfer verification job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Transfer verification job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Transfer verification job stopped")
			return
		case <-ticker.C:
			j.processUnverified(ctx)
		}
	}
}

func (j *TxVerificationJob) Stop() {
	close(j.stop)
}

func (j *TxVerificationJob) processUnverified(ctx context.Context) {
	pending, err := j.transactions.ListUnverified(ctx, j.batch)
	if err != nil {
		log.Printf("❌ Error fetching unverified transfers: %v", err)
		return
	}

	metrics.UnverifiedTransfers.Set(float64(len(pending)))
	if len(pending) == 0 {
		return
	}

	verified := 0
	for _, tx := range pending {
		client, err := j.clients.GetClient(tx.ChainID)
		if err != nil {
			// unknown chain or RPC down, try again next tick
			metrics.TransfersVerified.WithLabelValues(tx.ChainName, "rpc_error").Inc()
			continue
		}

		status, err := client.CheckReceipt(ctx, tx.TxHash)
		if err != nil {
			metrics.TransfersVerified.WithLabelValues(tx.ChainName, "rpc_error").Inc()
			continue
		}
		if !status.Found {
			metrics.TransfersVerified.WithLabelValues(tx.ChainName, "pending").Inc()
			continue
		}
		if !status.Succeeded {
			metrics.TransfersVerified.WithLabelValues(tx.ChainName, "reverted").Inc()
			log.Printf("❌ Transfer %s reverted on %s", tx.TxHash, tx.ChainName)
			continue
		}

		if err := j.transactions.MarkVerified(ctx, tx.ID); err != nil {
			log.Printf("❌ Error marking transfer %s verified: %v", tx.TxHash, err)
			continue
		}
		metrics.TransfersVerified.WithLabelValues(tx.ChainName, "verified").Inc()
		verified++
	}

	if verified > 0 {
		log.Printf("✅ Verified %d transfers", verified)
	}
}
