// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// openInput returns the command stream for path, stdin for "" or "-".
// When progress is set a byte progress bar for the file is drawn on
// progressOut. The returned close function finishes the bar and closes the
// file.
func openInput(path string, progress bool, progressOut io.Writer) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("input file %s not found", path)
		}
		return nil, nil, err
	}

	if !progress {
		return file, file.Close, nil
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	bar := progressbar.NewOptions64(stat.Size(),
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionSetDescription(fmt.Sprintf("Reading %s", filepath.Base(path))),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)

	closeFn := func() error {
		bar.Finish()
		return file.Close()
	}
	return io.TeeReader(file, bar), closeFn, nil
}
