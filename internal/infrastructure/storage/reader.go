package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
	"github.com/angband/angband-sub026/pkg/utils"
)

var (
	ErrInvalidMagic       = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// Load читает файл сохранения. Справочник нужен, чтобы снова связать
// уровень с расами и видами предметов.
func (s *Service) Load(path string, reg *domain.Registry) (*Save, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()

	save, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Attach(save, reg)

	logger.Log.WithFields(logrus.Fields{
		"component": "storage",
		"path":      path,
		"depth":     save.Header.Depth,
		"turn":      save.Header.Turn,
	}).Info("game loaded")
	return save, nil
}

// ReadHeader читает и проверяет только заголовок.
func ReadHeader(r io.Reader) (FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return header, fmt.Errorf("failed to read header: %w", err)
	}
	if string(header.Magic[:]) != MagicHeader {
		return header, fmt.Errorf("%w: %q", ErrInvalidMagic, header.Magic[:])
	}
	if header.Version != Version1 {
		return header, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, Version1)
	}
	return header, nil
}

// Read читает заголовок и тело. Уровень возвращается без справочника и
// генератора: их подключает Attach.
func Read(r io.Reader) (*Save, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	body := make([]byte, header.BodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	save := &Save{}
	if err := json.Unmarshal(body, save); err != nil {
		return nil, fmt.Errorf("failed to decode body: %w", err)
	}
	if save.Level == nil || save.Level.Cave == nil || save.Level.Monsters == nil || save.Level.Objects == nil {
		return nil, errors.New("save has no level")
	}
	save.Header = header
	return save, nil
}

// Attach восстанавливает то, что не сохраняется: справочник, генератор,
// списки свободных слотов арен и знания о новых расах.
func Attach(save *Save, reg *domain.Registry) {
	l := save.Level
	l.Reg = reg
	l.RNG = utils.ResumeRNG(save.Header.Seed, save.RNGCalls)
	l.Msgs = domain.Discard
	l.Monsters.Rebuild()
	l.Objects.Rebuild()
	if reg != nil && len(l.Lore) < len(reg.Races) {
		lore := make([]domain.Lore, len(reg.Races))
		copy(lore, l.Lore)
		l.Lore = lore
	}
	l.Update |= domain.UpdView | domain.UpdFlow | domain.UpdMonsters
}
