package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/version"
	"github.com/angband/angband-sub026/pkg/logger"
)

const (
	MagicHeader string = `ANGS` // 4 байта
	Version1    uint32 = version.SaveVersion
	// FileExt — расширение файлов сохранения.
	FileExt = ".angs"
)

// FileHeader — точное представление заголовка файла.
// binary.Write пишет его целиком: тут только массивы и числа.
type FileHeader struct {
	Magic     [4]byte // 4 байта
	Version   uint32  // 4 байта
	Seed      int64   // 8 байт
	Turn      int64   // 8 байт
	Timestamp int64   // 8 байт
	Depth     int32   // 4 байта
	BodyLen   uint32  // 4 байта
}

// Save — снимок партии: уровень со всеми аренами, знания о монстрах
// (внутри уровня) и лента команд.
type Save struct {
	Header FileHeader `json:"-"`

	Level  *domain.Level         `json:"level"`
	Replay *domain.ReplaySession `json:"replay,omitempty"`
	// RNGCalls — сколько раз бросали кости до сохранения.
	RNGCalls uint64 `json:"rngCalls"`
}

// NewSave собирает снимок уровня l.
func NewSave(l *domain.Level, replay *domain.ReplaySession) *Save {
	s := &Save{Level: l, Replay: replay}
	if l.RNG != nil {
		s.RNGCalls = l.RNG.Calls
		s.Header.Seed = l.RNG.Seed
	}
	s.Header.Turn = l.Turn
	s.Header.Depth = int32(l.Depth)
	return s
}

// Service пишет и читает сохранения в каталоге SaveDir.
type Service struct {
	SaveDir string
}

func NewService(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &Service{SaveDir: dir}, nil
}

// Save пишет снимок в новый файл и возвращает его путь.
func (s *Service) Save(save *Save) (string, error) {
	if save.Header.Timestamp == 0 {
		save.Header.Timestamp = time.Now().Unix()
	}
	filename := fmt.Sprintf("save_%d_d%d_t%d%s", save.Header.Seed, save.Header.Depth, save.Header.Turn, FileExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create save file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Write(w, save); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush save file: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "storage",
		"path":      path,
		"depth":     save.Header.Depth,
		"turn":      save.Header.Turn,
	}).Info("game saved")
	return path, nil
}

// Write пишет заголовок и JSON-тело снимка.
func Write(w io.Writer, save *Save) error {
	body, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("failed to encode body: %w", err)
	}
	if uint64(len(body)) > math.MaxUint32 {
		return fmt.Errorf("body too long: %d", len(body))
	}

	header := save.Header
	copy(header.Magic[:], MagicHeader)
	header.Version = Version1
	header.BodyLen = uint32(len(body))

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write body: %w", err)
	}
	return nil
}
