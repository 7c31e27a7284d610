package config

import (
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Shopify  ShopifyConfig
	Mysql    MysqlConfig
	Batch    BatchConfig
	LogLevel string
}

type ShopifyConfig struct {
	ShopDomain string
	Token      string
	APIVer     string
	Timeout    time.Duration
}

type MysqlConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

// BatchConfig holds the knobs shared by both sync jobs: where rows come from,
// where the report goes, and how hard the jobs lean on the Admin API.
type BatchConfig struct {
	InputPath        string
	ReportDir        string
	PaceDelay        time.Duration
	PropagationDelay time.Duration
	ProductsSource   string // "csv" or "mysql"
}

const (
	defaultShopifyTimeout  = 20 * time.Second
	defaultPaceDelay       = 400 * time.Millisecond
	defaultPropagationWait = 400 * time.Millisecond
	defaultAPIVersion      = "2024-10"
)

// LoadForInventorySync builds the configuration for the inventory
// reconciliation job. A .env file is honored when present; real environment
// variables win.
func LoadForInventorySync() (*Config, error) {
	_ = godotenv.Load()

	shopify, err := loadShopify()
	if err != nil {
		return nil, err
	}
	inputPath, err := requiredString("INVENTORY_CSV_PATH")
	if err != nil {
		return nil, err
	}

	return &Config{
		Shopify:  shopify,
		Batch:    loadBatch(inputPath),
		LogLevel: stringWithDefault("LOG_LEVEL", "info"),
	}, nil
}

// LoadForProductSync builds the configuration for the product upsert job.
// The MySQL block is only required when PRODUCTS_SOURCE=mysql.
func LoadForProductSync() (*Config, error) {
	_ = godotenv.Load()

	shopify, err := loadShopify()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Shopify:  shopify,
		Batch:    loadBatch(stringWithDefault("PRODUCTS_CSV_PATH", "")),
		LogLevel: stringWithDefault("LOG_LEVEL", "info"),
	}
	cfg.Batch.ProductsSource = stringWithDefault("PRODUCTS_SOURCE", "csv")

	switch cfg.Batch.ProductsSource {
	case "mysql":
		mysql, err := loadMysql()
		if err != nil {
			return nil, err
		}
		cfg.Mysql = mysql
	case "csv":
		if cfg.Batch.InputPath == "" {
			return nil, missingEnvError("PRODUCTS_CSV_PATH")
		}
	default:
		return nil, invalidEnvError("PRODUCTS_SOURCE", cfg.Batch.ProductsSource)
	}

	return cfg, nil
}

func loadShopify() (ShopifyConfig, error) {
	domain, err := requiredString("SHOPIFY_SHOP_DOMAIN")
	if err != nil {
		return ShopifyConfig{}, err
	}
	token, err := requiredString("SHOPIFY_ACCESS_TOKEN")
	if err != nil {
		return ShopifyConfig{}, err
	}
	timeoutSec, err := intWithDefault("SHOPIFY_TIMEOUT_SECONDS", int(defaultShopifyTimeout/time.Second))
	if err != nil {
		return ShopifyConfig{}, err
	}
	return ShopifyConfig{
		ShopDomain: domain,
		Token:      token,
		APIVer:     stringWithDefault("SHOPIFY_API_VERSION", defaultAPIVersion),
		Timeout:    time.Duration(timeoutSec) * time.Second,
	}, nil
}

func loadBatch(inputPath string) BatchConfig {
	paceMs, err := intWithDefault("ROW_PACE_MS", int(defaultPaceDelay/time.Millisecond))
	if err != nil {
		paceMs = int(defaultPaceDelay / time.Millisecond)
	}
	propagationMs, err := intWithDefault("LINK_PROPAGATION_MS", int(defaultPropagationWait/time.Millisecond))
	if err != nil {
		propagationMs = int(defaultPropagationWait / time.Millisecond)
	}
	return BatchConfig{
		InputPath:        inputPath,
		ReportDir:        stringWithDefault("REPORT_DIR", "."),
		PaceDelay:        time.Duration(paceMs) * time.Millisecond,
		PropagationDelay: time.Duration(propagationMs) * time.Millisecond,
	}
}

func loadMysql() (MysqlConfig, error) {
	host, err := requiredString("MYSQL_HOST")
	if err != nil {
		return MysqlConfig{}, err
	}
	username, err := requiredString("MYSQL_USER")
	if err != nil {
		return MysqlConfig{}, err
	}
	database, err := requiredString("MYSQL_DATABASE")
	if err != nil {
		return MysqlConfig{}, err
	}
	port, err := intWithDefault("MYSQL_PORT", 3306)
	if err != nil {
		return MysqlConfig{}, err
	}
	return MysqlConfig{
		Host:     host,
		Port:     port,
		Username: username,
		Password: stringWithDefault("MYSQL_PASSWORD", ""),
		Database: database,
	}, nil
}
