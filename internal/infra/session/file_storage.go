package session

import (
	"os"
	"path/filepath"
)

// sessionKey espelha a chave do localStorage no front original.
const sessionKey = "crm_user"

// FileStorage guarda o registro como um único arquivo JSON dentro do
// diretório de dados da aplicação.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (f *FileStorage) path() string {
	return filepath.Join(f.dir, sessionKey+".json")
}

func (f *FileStorage) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path())
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileStorage) Save(data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(), data, 0o600)
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
