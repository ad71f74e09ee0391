package testioc

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/hirehub/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db       *egorm.Component
	dbInitMu sync.Mutex
)

// InitDB 和线上一样装上 tracing 插件，配置来自 config/local.yaml
func InitDB() *egorm.Component {
	dbInitMu.Lock()
	defer dbInitMu.Unlock()
	if db != nil {
		return db
	}
	if err := loadConfig(); err != nil {
		panic(err)
	}
	db = ioc.InitDB()
	return db
}

func loadConfig() error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	f, err := os.Open(filepath.Join(root, "config", "local.yaml"))
	if err != nil {
		return err
	}
	defer f.Close()
	return econf.LoadFromReader(f, yaml.Unmarshal)
}

// moduleRoot 从当前目录往上找 go.mod，e2e 测试分布在不同深度的目录里
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("找不到 go.mod")
		}
		dir = parent
	}
}
