package sales

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

const archiveBatchSize = 5000

// OpenArchive connects to ClickHouse over its MySQL wire protocol. The sink
// is optional; callers only reach for it when DB_DSN is configured.
func OpenArchive(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to clickhouse: %w", err)
	}
	return db, nil
}

// Archive writes the loaded sales rows into a fresh fixed-schema table and
// returns its name. Write-only: nothing in the dashboard reads it back, it
// exists so lab exports survive past the retention of the source system.
func Archive(db *gorm.DB, records []models.SaleRecord) (string, error) {
	tableName := "sales_archive_" + uuid.NewV4().String()[:8]

	createSQL := `CREATE TABLE ` + tableName + ` (
	record_id String,
	paid_at DateTime,
	amount Float64,
	title String,
	store String
) ENGINE = MergeTree ORDER BY (paid_at, record_id)`
	if tx := db.Exec(createSQL); tx.Error != nil {
		return "", fmt.Errorf("create %s: %w", tableName, tx.Error)
	}

	buf := bytes.NewBufferString("")
	w := csv.NewWriter(buf)
	flush := func() error {
		w.Flush()
		if buf.Len() == 0 {
			return nil
		}
		sql := fmt.Sprintf("INSERT INTO %s FORMAT CSV\n%s", tableName, buf.String())
		buf.Reset()
		if tx := db.Exec(sql); tx.Error != nil {
			return tx.Error
		}
		return nil
	}

	for i, rec := range records {
		w.Write([]string{
			rec.RecordID,
			rec.PaidAt.Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(rec.Amount, 'f', -1, 64),
			rec.Title,
			rec.Store,
		})
		if (i+1)%archiveBatchSize == 0 {
			if err := flush(); err != nil {
				return "", fmt.Errorf("insert batch into %s: %w", tableName, err)
			}
		}
	}
	if err := flush(); err != nil {
		return "", fmt.Errorf("insert tail into %s: %w", tableName, err)
	}

	zap.S().Infow("sales archived", "table", tableName, "rows", len(records))
	return tableName, nil
}
