package contracts

import (
	"bytes"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Arguments are the named inputs recovered from call data.
type Arguments map[string]interface{}

// DecodeError is returned when call data does not match a method.
type DecodeError struct {
	Method string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode call data as %s: %s", e.Method, e.Reason)
}

// MetaTransaction is the decoded executeMetaTransaction envelope.
type MetaTransaction struct {
	UserAddress       common.Address
	FunctionSignature []byte
}

func lookupMethod(contractABI abi.ABI, methodName string) (abi.Method, bool) {
	if !strings.Contains(methodName, "(") {
		m, ok := contractABI.Methods[methodName]
		return m, ok
	}
	for _, m := range contractABI.Methods {
		if m.Sig == methodName {
			return m, true
		}
	}
	return abi.Method{}, false
}

// Decode unpacks data as a call to methodName. Method names may be plain names or
// full signatures, which selects between overloads.
func Decode(contractABI abi.ABI, methodName string, data []byte) (args Arguments, err error) {
	method, ok := lookupMethod(contractABI, methodName)
	if !ok {
		return nil, &DecodeError{Method: methodName, Reason: "method not in ABI"}
	}
	if len(data) < 4 {
		return nil, &DecodeError{Method: methodName, Reason: "call data shorter than a selector"}
	}
	if !bytes.Equal(data[:4], method.ID) {
		return nil, &DecodeError{Method: methodName, Reason: "selector mismatch"}
	}

	defer func() {
		if r := recover(); r != nil {
			args, err = nil, &DecodeError{Method: methodName, Reason: fmt.Sprint(r)}
		}
	}()

	args = Arguments{}
	if err := method.Inputs.UnpackIntoMap(args, data[4:]); err != nil {
		return nil, &DecodeError{Method: methodName, Reason: err.Error()}
	}
	return args, nil
}

// TryDecode is Decode with "does not match" as a plain false.
func TryDecode(contractABI abi.ABI, methodName string, data []byte) (Arguments, bool) {
	args, err := Decode(contractABI, methodName, data)
	if err != nil {
		return nil, false
	}
	return args, true
}

// DecodeMetaTransaction unwraps an executeMetaTransaction call.
func DecodeMetaTransaction(data []byte) (*MetaTransaction, bool) {
	args, ok := TryDecode(MetaTransactionABI, MethodExecuteMetaTransaction, data)
	if !ok {
		return nil, false
	}
	user, ok := args.Address("userAddress")
	if !ok {
		return nil, false
	}
	signature, ok := args.Bytes("functionSignature")
	if !ok {
		return nil, false
	}
	return &MetaTransaction{UserAddress: user, FunctionSignature: signature}, true
}

// DecodeForwarded decodes hex call data as an executeMetaTransaction envelope and
// then decodes its inner call against contractABI.
func DecodeForwarded(hexData string, contractABI abi.ABI, methodName string) (Arguments, bool) {
	data, err := hexutil.Decode(hexData)
	if err != nil {
		return nil, false
	}
	meta, ok := DecodeMetaTransaction(data)
	if !ok {
		return nil, false
	}
	return TryDecode(contractABI, methodName, meta.FunctionSignature)
}

// EncodeForwardMetaTx packs forwardMetaTx(target, data) for the forwarder contract.
func EncodeForwardMetaTx(target string, data []byte) ([]byte, error) {
	if !common.IsHexAddress(target) {
		return nil, fmt.Errorf("invalid target address %q", target)
	}
	packed, err := ForwarderABI.Pack(MethodForwardMetaTx, common.HexToAddress(target), data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode forwardMetaTx: %w", err)
	}
	return packed, nil
}

func (a Arguments) Address(name string) (common.Address, bool) {
	v, ok := a[name].(common.Address)
	return v, ok
}

func (a Arguments) Addresses(name string) ([]common.Address, bool) {
	v, ok := a[name].([]common.Address)
	return v, ok
}

func (a Arguments) BigInt(name string) (*big.Int, bool) {
	v, ok := a[name].(*big.Int)
	return v, ok && v != nil
}

func (a Arguments) Bytes(name string) ([]byte, bool) {
	v, ok := a[name].([]byte)
	return v, ok
}

// FirstTupleBigInt reads the first element of field inside the first tuple of a
// tuple array argument, e.g. _itemsToBuy[0].prices[0].
func (a Arguments) FirstTupleBigInt(name, field string) (*big.Int, bool) {
	tuples := reflect.ValueOf(a[name])
	if tuples.Kind() != reflect.Slice || tuples.Len() == 0 {
		return nil, false
	}
	first := tuples.Index(0)
	if first.Kind() != reflect.Struct {
		return nil, false
	}
	values := first.FieldByName(field)
	if !values.IsValid() || values.Kind() != reflect.Slice || values.Len() == 0 {
		return nil, false
	}
	v, ok := values.Index(0).Interface().(*big.Int)
	return v, ok && v != nil
}
