package filesystem

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"
)

// FsLogger traces the operations made on a mounted filesystem.
type FsLogger struct {
	ctx   context.Context
	fs    afero.Fs
	level slog.Level
}

func (l *FsLogger) log(op string, attrs ...slog.Attr) {
	attrs = append([]slog.Attr{slog.String("op", op), slog.String("fs", l.fs.Name())}, attrs...)
	slog.LogAttrs(l.ctx, l.level, "filesystem operation", attrs...)
}

func (l *FsLogger) wrap(file afero.File, err error) (afero.File, error) {
	if err != nil {
		return nil, err
	}
	return &FileLogger{file: file, logger: l}, nil
}

func (l *FsLogger) Chmod(name string, mode os.FileMode) error {
	l.log("chmod", slog.String("name", name), slog.Any("mode", mode))
	return l.fs.Chmod(name, mode)
}

func (l *FsLogger) Chown(name string, uid int, gid int) error {
	l.log("chown", slog.String("name", name), slog.Int("uid", uid), slog.Int("gid", gid))
	return l.fs.Chown(name, uid, gid)
}

func (l *FsLogger) Chtimes(name string, atime time.Time, mtime time.Time) error {
	l.log("chtimes", slog.String("name", name), slog.Time("mtime", mtime))
	return l.fs.Chtimes(name, atime, mtime)
}

func (l *FsLogger) Create(name string) (afero.File, error) {
	l.log("create", slog.String("name", name))
	return l.wrap(l.fs.Create(name))
}

func (l *FsLogger) Mkdir(name string, perm os.FileMode) error {
	l.log("mkdir", slog.String("name", name), slog.Any("perm", perm))
	return l.fs.Mkdir(name, perm)
}

func (l *FsLogger) MkdirAll(path string, perm os.FileMode) error {
	l.log("mkdir_all", slog.String("name", path), slog.Any("perm", perm))
	return l.fs.MkdirAll(path, perm)
}

func (l *FsLogger) Name() string {
	return l.fs.Name()
}

func (l *FsLogger) Open(name string) (afero.File, error) {
	l.log("open", slog.String("name", name))
	return l.wrap(l.fs.Open(name))
}

func (l *FsLogger) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	l.log("open_file", slog.String("name", name), slog.Int("flag", flag), slog.Any("perm", perm))
	return l.wrap(l.fs.OpenFile(name, flag, perm))
}

func (l *FsLogger) Remove(name string) error {
	l.log("remove", slog.String("name", name))
	return l.fs.Remove(name)
}

func (l *FsLogger) RemoveAll(path string) error {
	l.log("remove_all", slog.String("name", path))
	return l.fs.RemoveAll(path)
}

func (l *FsLogger) Rename(oldname string, newname string) error {
	l.log("rename", slog.String("name", oldname), slog.String("new_name", newname))
	return l.fs.Rename(oldname, newname)
}

func (l *FsLogger) Stat(name string) (os.FileInfo, error) {
	return l.fs.Stat(name)
}

var _ afero.Fs = &FsLogger{}

// NewLogger wraps fs so that every mutating or opening operation is logged
// at the given level.
func NewLogger(ctx context.Context, fs afero.Fs, level slog.Level) *FsLogger {
	return &FsLogger{
		ctx:   ctx,
		fs:    fs,
		level: level,
	}
}

// FileLogger logs the lifecycle of a file opened through an FsLogger. Reads
// and writes are counted and reported on close.
type FileLogger struct {
	file    afero.File
	logger  *FsLogger
	read    int64
	written int64
}

func (f *FileLogger) Close() error {
	f.logger.log("close", slog.String("name", f.file.Name()), slog.Int64("read", f.read), slog.Int64("written", f.written))
	return f.file.Close()
}

func (f *FileLogger) Name() string {
	return f.file.Name()
}

func (f *FileLogger) Read(p []byte) (int, error) {
	n, err := f.file.Read(p)
	f.read += int64(n)
	return n, err
}

func (f *FileLogger) ReadAt(p []byte, off int64) (int, error) {
	n, err := f.file.ReadAt(p, off)
	f.read += int64(n)
	return n, err
}

func (f *FileLogger) Readdir(count int) ([]os.FileInfo, error) {
	return f.file.Readdir(count)
}

func (f *FileLogger) Readdirnames(n int) ([]string, error) {
	return f.file.Readdirnames(n)
}

func (f *FileLogger) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

func (f *FileLogger) Stat() (os.FileInfo, error) {
	return f.file.Stat()
}

func (f *FileLogger) Sync() error {
	return f.file.Sync()
}

func (f *FileLogger) Truncate(size int64) error {
	f.logger.log("truncate", slog.String("name", f.file.Name()), slog.Int64("size", size))
	return f.file.Truncate(size)
}

func (f *FileLogger) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	f.written += int64(n)
	return n, err
}

func (f *FileLogger) WriteAt(p []byte, off int64) (int, error) {
	n, err := f.file.WriteAt(p, off)
	f.written += int64(n)
	return n, err
}

func (f *FileLogger) WriteString(s string) (int, error) {
	n, err := f.file.WriteString(s)
	f.written += int64(n)
	return n, err
}

var _ afero.File = &FileLogger{}
