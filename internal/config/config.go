package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort    string
	DataDir     string // CSV dosyalarının tutulduğu klasör
	JWTSecret   string
	CORSOrigins string

	// Diyagnostik eşikleri. Eski sürümlerde sayfadan sayfaya farklı
	// literaller kullanılıyordu; burada tek yerden yapılandırılır.
	SalesCVThreshold   float64 // günlük ciro tutarlılık eşiği
	TicketCVThreshold  float64 // ortalama fiş tutarı eşiği
	ShiftCVThreshold   float64 // vardiya bazlı oynaklık eşiği
	PeakRatioThreshold float64 // pik bağımlılığı eşiği

	// RRHH: işveren sosyal güvenlik prim oranı
	SocialChargeRate float64
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),

		SalesCVThreshold:   getEnvFloat("SALES_CV_THRESHOLD", 0.35),
		TicketCVThreshold:  getEnvFloat("TICKET_CV_THRESHOLD", 0.25),
		ShiftCVThreshold:   getEnvFloat("SHIFT_CV_THRESHOLD", 0.30),
		PeakRatioThreshold: getEnvFloat("PEAK_RATIO_THRESHOLD", 0.30),

		SocialChargeRate: getEnvFloat("SOCIAL_CHARGE_RATE", 0.33),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.DataDir == "./data" {
		log.Println("[WARN] DATA_DIR varsayılan değer kullanılıyor, production için kalıcı bir klasör tanımla.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[WARN] %s geçersiz sayı (%q), varsayılan %.2f kullanılıyor", key, v, def)
		return def
	}
	return f
}
