package premove

import "github.com/apex/log"

var logger log.Interface = log.Log

// SetLogger 替换引擎的诊断日志，传 nil 恢复默认
func SetLogger(l log.Interface) {
	if l == nil {
		l = log.Log
	}
	logger = l
}
