package dict

import (
	"errors"
	"fmt"
)

// 三类互不重叠的错误 通过errors.Is区分
var (
	// ErrInvalidArgument 调用方参数非法 如key为空 或构造时容量为负
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateKey Insert时key已存在
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound Remove/Update/Lookup时key不存在
	ErrNotFound = errors.New("key not found")
)

type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return ErrInvalidArgument.Error() + ": " + e.Msg
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func NewInvalidArgumentError(msg string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Msg: msg,
	}
}

type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDuplicateKey, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

func NewDuplicateKeyError(key any) *DuplicateKeyError {
	return &DuplicateKeyError{
		Key: key,
	}
}

type NotFoundError struct {
	Key any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %v", ErrNotFound, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(key any) *NotFoundError {
	return &NotFoundError{
		Key: key,
	}
}
