package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Pricing      PricingConfig      `toml:"pricing"`
	Cancellation CancellationConfig `toml:"cancellation"`
	Acquiring    AcquiringConfig    `toml:"acquiring"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PricingConfig цены на питание и параметры скидок
// Нулевые значения заменяются дефолтами из internal/domain
type PricingConfig struct {
	BreakfastPrice         int64   `toml:"breakfast_price"`
	LunchPrice             int64   `toml:"lunch_price"`
	DinnerPrice            int64   `toml:"dinner_price"`
	LongStayNights         int     `toml:"long_stay_nights"`
	LongStayDiscount       float64 `toml:"long_stay_discount_percent"`
	RepeatCustomerDiscount float64 `toml:"repeat_customer_discount_percent"`
}

// CancellationConfig политика отмены бронирований
type CancellationConfig struct {
	NoticeHours int `toml:"notice_hours"`
}

// AcquiringConfig настройки клиента платежного шлюза.
// Пустой URL включает оффлайн-режим (оплата на стойке регистрации)
type AcquiringConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults подставляет дефолтные значения для незаполненных полей
func (c *Config) applyDefaults() {
	if c.Pricing.BreakfastPrice == 0 {
		c.Pricing.BreakfastPrice = domain.DefaultBreakfastPrice
	}
	if c.Pricing.LunchPrice == 0 {
		c.Pricing.LunchPrice = domain.DefaultLunchPrice
	}
	if c.Pricing.DinnerPrice == 0 {
		c.Pricing.DinnerPrice = domain.DefaultDinnerPrice
	}
	if c.Pricing.LongStayNights == 0 {
		c.Pricing.LongStayNights = domain.DefaultLongStayNights
	}
	if c.Pricing.LongStayDiscount == 0 {
		c.Pricing.LongStayDiscount = domain.DefaultLongStayDiscountPercent
	}
	if c.Pricing.RepeatCustomerDiscount == 0 {
		c.Pricing.RepeatCustomerDiscount = domain.DefaultRepeatCustomerDiscountPercent
	}
	if c.Cancellation.NoticeHours == 0 {
		c.Cancellation.NoticeHours = domain.DefaultCancellationNoticeHours
	}
	if c.Acquiring.Timeout == 0 {
		c.Acquiring.Timeout = 5
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "hotel-booking-service"
	}
}

// PricingRules собирает доменные правила ценообразования из конфигурации
func (c *Config) PricingRules() domain.PricingRules {
	return domain.PricingRules{
		MealPrices: domain.MealPrices{
			Breakfast: c.Pricing.BreakfastPrice,
			Lunch:     c.Pricing.LunchPrice,
			Dinner:    c.Pricing.DinnerPrice,
		},
		LongStayNights:                c.Pricing.LongStayNights,
		LongStayDiscountPercent:       c.Pricing.LongStayDiscount,
		RepeatCustomerDiscountPercent: c.Pricing.RepeatCustomerDiscount,
	}
}
