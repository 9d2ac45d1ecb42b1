package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const recipientsDDL = `
CREATE TABLE IF NOT EXISTS recipients (
	id                      VARCHAR(64)  PRIMARY KEY,
	client_id               BIGINT       NOT NULL,
	name                    VARCHAR(255) NOT NULL,
	routing_number          VARCHAR(64)  NOT NULL,
	national_identification VARCHAR(64)  NOT NULL,
	account_number          VARCHAR(64)  NOT NULL,
	created_at              TIMESTAMPTZ  NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_recipients_client_created ON recipients (client_id, created_at);
`

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&transactionRecord{}, &stepRecord{}); err != nil {
		return fmt.Errorf("migrate ledger: %w", err)
	}
	if err := db.WithContext(ctx).Exec(recipientsDDL).Error; err != nil {
		return fmt.Errorf("migrate recipients: %w", err)
	}
	return nil
}
