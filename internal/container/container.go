package container

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"trade-query-go/api"
	"trade-query-go/config"
	"trade-query-go/infrastructure/logger"
	"trade-query-go/infrastructure/monitor"
	"trade-query-go/trade"
)

// Container 依赖注入容器，管理所有组件的生命周期
type Container struct {
	// 配置
	cfg        config.AppConfig
	configPath string

	// 基础设施
	logger  *logger.Logger
	monitor *monitor.Monitor

	// 核心服务
	store *trade.Store
	api   *api.Server

	// HTTP服务器
	apiServer     *httpServerComponent
	metricsServer *httpServerComponent

	// 生命周期管理
	lifecycle *LifecycleManager
}

// New 加载配置并创建Container实例
func New(configPath string) (*Container, error) {
	cfg, err := config.LoadWithEnvOverrides(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	return NewWithConfig(cfg, configPath), nil
}

// NewWithConfig 使用已加载的配置创建Container，configPath 仅用于热更新
func NewWithConfig(cfg config.AppConfig, configPath string) *Container {
	return &Container{
		cfg:        cfg,
		configPath: configPath,
		lifecycle:  NewLifecycleManager(),
	}
}

// Build 构建所有组件
func (c *Container) Build() error {
	if err := c.buildInfrastructure(); err != nil {
		return fmt.Errorf("build infrastructure failed: %w", err)
	}

	c.buildCoreServices()
	c.registerLifecycleComponents()
	c.logger.Info("container built", zap.String("env", c.cfg.Env), zap.Int("trades", c.store.Len()))
	return nil
}

func (c *Container) buildInfrastructure() error {
	var err error
	c.logger, err = logger.New(c.cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger failed: %w", err)
	}

	monitorCfg := monitor.DefaultConfig()
	if c.cfg.Metrics.Namespace != "" {
		monitorCfg.Namespace = c.cfg.Metrics.Namespace
	}
	c.monitor = monitor.New(monitorCfg)
	return nil
}

func (c *Container) buildCoreServices() {
	c.store = trade.SeedStore()
	c.api = api.NewServer(c.store, c.logger, c.monitor)
}

func (c *Container) registerLifecycleComponents() {
	c.apiServer = &httpServerComponent{
		name:            "api_server",
		handler:         c.api.Handler(),
		addr:            c.cfg.HTTP.Addr,
		readTimeout:     c.cfg.HTTP.ReadTimeout,
		writeTimeout:    c.cfg.HTTP.WriteTimeout,
		shutdownTimeout: c.cfg.HTTP.ShutdownTimeout,
		logger:          c.logger,
	}
	c.lifecycle.Register(c.apiServer)

	if c.cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", c.monitor.Handler())
		mux.HandleFunc("/healthz", c.serveHealth)
		c.metricsServer = &httpServerComponent{
			name:            "metrics_server",
			handler:         mux,
			addr:            c.cfg.Metrics.Addr,
			shutdownTimeout: c.cfg.HTTP.ShutdownTimeout,
			logger:          c.logger,
		}
		c.lifecycle.Register(c.metricsServer)
	}

	if c.cfg.Reload.Enabled && c.configPath != "" {
		c.lifecycle.Register(&watcherComponent{
			watcher:  config.Watcher{Path: c.configPath, Debounce: c.cfg.Reload.Debounce},
			onUpdate: c.applyConfig,
			onError:  c.reloadFailed,
		})
	}
}

// applyConfig 应用热更新配置，目前仅日志级别生效
func (c *Container) applyConfig(cfg config.AppConfig) {
	if err := c.logger.SetLevel(cfg.Log.Level); err != nil {
		c.reloadFailed(err)
		return
	}
	c.monitor.RecordConfigReload(true)
	c.logger.Info("config reloaded", zap.String("log_level", c.logger.Level()))
}

func (c *Container) reloadFailed(err error) {
	c.monitor.RecordConfigReload(false)
	c.logger.LogError(err, map[string]interface{}{"action": "config_reload"})
}

func (c *Container) serveHealth(w http.ResponseWriter, _ *http.Request) {
	if err := c.HealthCheck(); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (c *Container) Start(ctx context.Context) error {
	c.logger.Info("starting container...")

	if err := c.lifecycle.StartAll(ctx); err != nil {
		return fmt.Errorf("start failed: %w", err)
	}

	c.logger.Info("container started")
	return nil
}

func (c *Container) Stop() error {
	c.logger.Info("stopping container...")

	err := c.lifecycle.StopAll()
	if err != nil {
		c.logger.LogError(err, map[string]interface{}{"action": "stop"})
	}
	c.logger.Info("container stopped")
	_ = c.logger.Close()
	return err
}

func (c *Container) HealthCheck() error {
	return c.lifecycle.CheckHealth()
}

// Logger 返回容器日志器
func (c *Container) Logger() *logger.Logger { return c.logger }

// APIAddr 返回API实际监听地址
func (c *Container) APIAddr() string { return c.apiServer.Addr() }

// MetricsAddr 返回指标服务实际监听地址，未启用时为空
func (c *Container) MetricsAddr() string {
	if c.metricsServer == nil {
		return ""
	}
	return c.metricsServer.Addr()
}
