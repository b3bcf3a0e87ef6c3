package snapshotting

import (
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SaveSnapshotJSON grava o snapshot como JSON indentado em um arquivo com
// timestamp no nome e retorna o caminho gravado. O diretório é criado se
// não existir.
func SaveSnapshotJSON(snap *domain.Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "criando diretório de snapshots")
	}

	stamp := time.Now().UTC().Format("20060102_150405")
	path := filepath.Join(dir, "snapshot_"+stamp+".json")

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "serializando snapshot")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "gravando snapshot")
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
	}).Info("Snapshot exportado em JSON")

	return path, nil
}
