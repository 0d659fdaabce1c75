package config

import "github.com/ecodeclub/studio/internal/content"

// 各个组件从 econf 里读取的配置，key 见 config.yaml

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []TopicConfig `yaml:"topics"`
}

type TopicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type EmailConfig struct {
	// Provider aliyun 或者 log，默认 log
	Provider        string `yaml:"provider"`
	AccessKeyID     string `yaml:"accessKeyId"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	AccountName     string `yaml:"accountName"`
}

type ContentConfig struct {
	// Root 内容根目录，blog 和教程目录都相对于它
	Root    string           `yaml:"root"`
	BlogDir string           `yaml:"blogDir"`
	Series  []content.Series `yaml:"series"`
}

type TraceConfig struct {
	ServiceName    string `yaml:"serviceName"`
	ServiceVersion string `yaml:"serviceVersion"`
	Endpoint       string `yaml:"endpoint"`
}
