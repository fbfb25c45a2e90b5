package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Store: tüm CSV dosyalarını tek bir veri klasöründe yöneten kayıt deposu.
// Tek kullanıcılı bir araç için tasarlandı: her kaydetme ilgili dosyanın
// tamamını yeniden yazar, kilitleme yoktur; aynı anda iki oturum yazarsa
// son yazan kazanır. Bu bilinçli bir sadeleştirmedir.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("veri klasörü oluşturulamadı: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// table: başlık satırı üzerinden kolon erişimi sağlayan ham CSV içeriği.
// Eski sürümlerde yazılmış dosyalarda kolonlar eksik olabilir; eksik kolon
// okumada boş değer döner ve kayıt sıfır/boş ile doldurulur. Kaydetme her
// zaman güncel başlıkla yazar, böylece şema taşıması yükleme anında bir
// kez yapılmış olur.
type table struct {
	idx  map[string]int
	rows [][]string
}

// readTable: dosya yoksa boş tablo döner, hata değil.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &table{idx: map[string]int{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s açılamadı: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // satır uzunlukları değişebilir, savunmacı oku
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s okunamadı: %w", filepath.Base(path), err)
	}
	if len(all) == 0 {
		return &table{idx: map[string]int{}}, nil
	}

	t := &table{idx: make(map[string]int, len(all[0]))}
	for i, name := range all[0] {
		t.idx[name] = i
	}
	t.rows = all[1:]
	return t, nil
}

// get: kolon yoksa veya satır kısa kaldıysa boş string
func (t *table) get(row []string, col string) string {
	i, ok := t.idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s yazılamadı: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Sayısal alanlar bozuksa sıfıra düşülür; bozuk sayı yüzünden bütün
// yükleme iptal edilmez (tarih alanı bunun istisnasıdır, bkz. LoadSales).

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseUint(s string) uint {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// money: para alanları iki ondalıkla yazılır; böylece ard arda
// yükle-kaydet döngüleri dosyayı bayt bayt aynı bırakır.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
