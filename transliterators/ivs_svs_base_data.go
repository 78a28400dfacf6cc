package transliterators

import (
	"strings"
	"sync"
)

// Code generated from ivs-svs-base-mappings.json; DO NOT EDIT.

type ivsSvsBaseRecord struct {
	ivs      string
	svs      string
	base90   string
	base2004 string
}

// Compact record table, four null-separated fields per record:
// ivs, svs, base90, base2004. Expanded into lookup tables on first use.
const ivsSvsBaseCompressedData = "\u4e0e\U000e0100\u0000\u0000\u4e0e\u0000\u4e0e\u0000\u4e21\U000e0100\u0000\u0000\u4e21\u0000\u4e21\u0000\u4e57\U000e0100\u0000\u0000\u4e57\u0000\u4e57\u0000\u4e58\U000e0100\u0000\u0000\u4e58\u0000\u4e58\u0000\u4e71\U000e0100\u0000\u0000\u4e71\u0000\u4e71\u0000\u4e80\U000e0100\u0000\u0000\u4e80\u0000\u4e80\u0000\u4e82\U000e0100\u0000\u0000\u4e82\u0000\u4e82\u0000\u4e88\U000e0100\u0000\u0000\u4e88\u0000\u4e88\u0000\u4e89\U000e0100\u0000\u0000\u4e89\u0000\u4e89\u0000\u4e9c\U000e0100\u0000\u0000\u4e9c\u0000\u4e9c\u0000\u4e9e\U000e0100\u0000\u0000\u4e9e\u0000\u4e9e\u0000\u4ecf\U000e0100\u0000\u0000\u4ecf\u0000\u4ecf\u0000\u4eee\U000e0100\u0000\u0000\u4eee\u0000\u4eee\u0000\u4f1a\U000e0100\u0000\u0000\u4f1a\u0000\u4f1a\u0000\u4f1d\U000e0100\u0000\u0000\u4f1d\u0000\u4f1d\u0000\u4f53\U000e0100\u0000\u0000\u4f53\u0000\u4f53\u0000\u4f59\U000e0100\u0000\u0000\u4f59\u0000\u4f59\u0000\u4f5b\U000e0100\u0000\u0000\u4f5b\u0000\u4f5b\u0000\u4f86\U000e0100\u0000\u0000\u4f86\u0000\u4f86\u0000\u4fa1\U000e0100\u0000\u0000\u4fa1\u0000\u4fa1\u0000\u5039\U000e0100\u0000\u0000\u5039\u0000\u5039\u0000\u5047\U000e0100\u0000\u0000\u5047\u0000\u5047\u0000\u507d\U000e0100\u0000\u0000\u507d\u0000\u507d\u0000\u50b3\U000e0100\u0000\u0000\u50b3\u0000\u50b3\u0000\u50de\U000e0100\u0000\u0000\u50de\u0000\u50de\u0000\u50f9\U000e0100\u0000\u0000\u50f9\u0000\u50f9\u0000\u5109\U000e0100\u0000\u0000\u5109\u0000\u5109\u0000\u5150\U000e0100\u0000\u0000\u5150\u0000\u5150\u0000\u5152\U000e0100\u0000\u0000\u5152\u0000\u5152\u0000\u515a\U000e0100\u0000\u0000\u515a\u0000\u515a\u0000\u5169\U000e0100\u0000\u0000\u5169\u0000\u5169\u0000\u5186\U000e0100\u0000\u0000\u5186\u0000\u5186\u0000\u5199\U000e0100\u0000\u0000\u5199\u0000\u5199\u0000\u51e6\U000e0100\u0000\u0000\u51e6\u0000\u51e6\u0000\u5263\U000e0100\u0000\u0000\u5263\u0000\u5263\u0000\u5264\U000e0100\u0000\u0000\u5264\u0000\u5264\u0000\u5269\U000e0100\u0000\u0000\u5269\u0000\u5269\u0000\u5270\U000e0100\u0000\u0000\u5270\u0000\u5270\u0000\u528d\U000e0100\u0000\u0000\u528d\u0000\u528d\u0000\u5291\U000e0100\u0000\u0000\u5291\u0000\u5291\u0000\u52b1\U000e0100\u0000\u0000\u52b1\u0000\u52b1\u0000\u52b4\U000e0100\u0000\u0000\u52b4\u0000\u52b4\u0000\u52b9\U000e0100\u0000\u0000\u52b9\u0000\u52b9\u0000\u52c5\U000e0100\u0000\u0000\u52c5\u0000\u52c5\u0000\u52de\U000e0100\u0000\u0000\u52de\u0000\u52de\u0000\u52e7\U000e0100\u0000\u0000\u52e7\u0000\u52e7\u0000\u52f2\U000e0100\u0000\u0000\u52f2\u0000\u52f2\u0000\u52f3\U000e0100\u0000\u0000\u52f3\u0000\u52f3\u0000\u52f5\U000e0100\u0000\u0000\u52f5\u0000\u52f5\u0000\u52f8\U000e0100\u0000\u0000\u52f8\u0000\u52f8\u0000\u533a\U000e0100\u0000\u0000\u533a\u0000\u533a\u0000\u533b\U000e0100\u0000\u0000\u533b\u0000\u533b\u0000\u5340\U000e0100\u0000\u0000\u5340\u0000\u5340\u0000\u5358\U000e0100\u0000\u0000\u5358\u0000\u5358\u0000\u5377\U000e0100\u0000\u0000\u5377\u0000\u5377\u0000\u53b3\U000e0100\u0000\u0000\u53b3\u0000\u53b3\u0000\u53c2\U000e0100\u0000\u0000\u53c2\u0000\u53c2\u0000\u53c3\U000e0100\u0000\u0000\u53c3\u0000\u53c3\u0000\u53cc\U000e0100\u0000\u0000\u53cc\u0000\u53cc\u0000\u53ce\U000e0100\u0000\u0000\u53ce\u0000\u53ce\u0000\u53d9\U000e0100\u0000\u0000\u53d9\u0000\u53d9\u0000\u53f0\U000e0100\u0000\u0000\u53f0\u0000\u53f0\u0000\u53f7\U000e0100\u0000\u0000\u53f7\u0000\u53f7\u0000\u55ae\U000e0100\u0000\u0000\u55ae\u0000\u55ae\u0000\u55b6\U000e0100\u0000\u0000\u55b6\u0000\u55b6\u0000\u5631\U000e0100\u0000\u0000\u5631\u0000\u5631\u0000\u56b4\U000e0100\u0000\u0000\u56b4\u0000\u56b4\u0000\u56d1\U000e0100\u0000\u0000\u56d1\u0000\u56d1\u0000\u56e3\U000e0100\u0000\u0000\u56e3\u0000\u56e3\u0000\u56f2\U000e0100\u0000\u0000\u56f2\u0000\u56f2\u0000\u56f3\U000e0100\u0000\u0000\u56f3\u0000\u56f3\u0000\u56fd\U000e0100\u0000\u0000\u56fd\u0000\u56fd\u0000\u5708\U000e0100\u0000\u0000\u5708\u0000\u5708\u0000\u570b\U000e0100\u0000\u0000\u570b\u0000\u570b\u0000\u570d\U000e0100\u0000\u0000\u570d\u0000\u570d\u0000\u570f\U000e0100\u0000\u0000\u570f\u0000\u570f\u0000\u5713\U000e0100\u0000\u0000\u5713\u0000\u5713\u0000\u5716\U000e0100\u0000\u0000\u5716\u0000\u5716\u0000\u5718\U000e0100\u0000\u0000\u5718\u0000\u5718\u0000\u5727\U000e0100\u0000\u0000\u5727\u0000\u5727\u0000\u5815\U000e0100\u0000\u0000\u5815\u0000\u5815\u0000\u5841\U000e0100\u0000\u0000\u5841\u0000\u5841\u0000\u5869\U000e0100\u0000\u0000\u5869\u0000\u5869\u0000\u5897\U000e0100\u0000\u0000\u5897\u0000\u5897\u0000\u589e\U000e0100\u0000\u0000\u589e\u0000\u589e\u0000\u58ae\U000e0100\u0000\u0000\u58ae\u0000\u58ae\u0000\u58ca\U000e0100\u0000\u0000\u58ca\u0000\u58ca\u0000\u58cc\U000e0100\u0000\u0000\u58cc\u0000\u58cc\u0000\u58d3\U000e0100\u0000\u0000\u58d3\u0000\u58d3\u0000\u58d8\U000e0100\u0000\u0000\u58d8\u0000\u58d8\u0000\u58de\U000e0100\u0000\u0000\u58de\u0000\u58de\u0000\u58e4\U000e0100\u0000\u0000\u58e4\u0000\u58e4\u0000\u58f0\U000e0100\u0000\u0000\u58f0\u0000\u58f0\u0000\u58f1\U000e0100\u0000\u0000\u58f1\u0000\u58f1\u0000\u58f2\U000e0100\u0000\u0000\u58f2\u0000\u58f2\u0000\u58f9\U000e0100\u0000\u0000\u58f9\u0000\u58f9\u0000\u58fd\U000e0100\u0000\u0000\u58fd\u0000\u58fd\u0000\u5909\U000e0100\u0000\u0000\u5909\u0000\u5909\u0000\u5965\U000e0100\u0000\u0000\u5965\u0000\u5965\u0000\u5967\U000e0100\u0000\u0000\u5967\u0000\u5967\u0000\u5b22\U000e0100\u0000\u0000\u5b22\u0000\u5b22\u0000\u5b43\U000e0100\u0000\u0000\u5b43\u0000\u5b43\u0000\u5b66\U000e0100\u0000\u0000\u5b66\u0000\u5b66\u0000\u5b78\U000e0100\u0000\u0000\u5b78\u0000\u5b78\u0000\u5b9d\U000e0100\u0000\u0000\u5b9d\u0000\u5b9d\u0000\u5b9f\U000e0100\u0000\u0000\u5b9f\u0000\u5b9f\u0000\u5bdd\U000e0100\u0000\u0000\u5bdd\u0000\u5bdd\u0000\u5be2\U000e0100\u0000\u0000\u5be2\u0000\u5be2\u0000\u5be6\U000e0100\u0000\u0000\u5be6\u0000\u5be6\u0000\u5beb\U000e0100\u0000\u0000\u5beb\u0000\u5beb\u0000\u5bf6\U000e0100\u0000\u0000\u5bf6\u0000\u5bf6\u0000\u5bfe\U000e0100\u0000\u0000\u5bfe\u0000\u5bfe\u0000\u5bff\U000e0100\u0000\u0000\u5bff\u0000\u5bff\u0000\u5c02\U000e0100\u0000\u0000\u5c02\u0000\u5c02\u0000\u5c08\U000e0100\u0000\u0000\u5c08\u0000\u5c08\u0000\u5c0d\U000e0100\u0000\u0000\u5c0d\u0000\u5c0d\u0000\u5c3d\U000e0100\u0000\u0000\u5c3d\u0000\u5c3d\u0000\u5c46\U000e0100\u0000\u0000\u5c46\u0000\u5c46\u0000\u5c4a\U000e0100\u0000\u0000\u5c4a\u0000\u5c4a\u0000\u5c5e\U000e0100\u0000\u0000\u5c5e\u0000\u5c5e\u0000\u5c6c\U000e0100\u0000\u0000\u5c6c\u0000\u5c6c\u0000\u5cb3\U000e0100\u0000\u0000\u5cb3\u0000\u5cb3\u0000\u5ce1\U000e0100\u0000\u0000\u5ce1\u0000\u5ce1\u0000\u5cfd\U000e0100\u0000\u0000\u5cfd\u0000\u5cfd\u0000\u5dbd\U000e0100\u0000\u0000\u5dbd\u0000\u5dbd\u0000\u5de2\U000e0100\u0000\u0000\u5de2\u0000\u5de2\u0000\u5de3\U000e0100\u0000\u0000\u5de3\u0000\u5de3\u0000\u5dfb\U000e0100\u0000\u0000\u5dfb\u0000\u5dfb\u0000\u5e2f\U000e0100\u0000\u0000\u5e2f\u0000\u5e2f\u0000\u5e30\U000e0100\u0000\u0000\u5e30\u0000\u5e30\u0000\u5e36\U000e0100\u0000\u0000\u5e36\u0000\u5e36\u0000\u5e81\U000e0100\u0000\u0000\u5e81\u0000\u5e81\u0000\u5e83\U000e0100\u0000\u0000\u5e83\u0000\u5e83\u0000\u5ec3\U000e0100\u0000\u0000\u5ec3\u0000\u5ec3\u0000\u5ee2\U000e0100\u0000\u0000\u5ee2\u0000\u5ee2\u0000\u5ee3\U000e0100\u0000\u0000\u5ee3\u0000\u5ee3\u0000\u5ef3\U000e0100\u0000\u0000\u5ef3\u0000\u5ef3\u0000\u5f01\U000e0100\u0000\u0000\u5f01\u0000\u5f01\u0000\u5f10\U000e0100\u0000\u0000\u5f10\u0000\u5f10\u0000\u5f25\U000e0100\u0000\u0000\u5f25\u0000\u5f25\u0000\u5f3e\U000e0100\u0000\u0000\u5f3e\u0000\u5f3e\u0000\u5f48\U000e0100\u0000\u0000\u5f48\u0000\u5f48\u0000\u5f4c\U000e0100\u0000\u0000\u5f4c\u0000\u5f4c\u0000\u5f53\U000e0100\u0000\u0000\u5f53\u0000\u5f53\u0000\u5f84\U000e0100\u0000\u0000\u5f84\u0000\u5f84\u0000\u5f91\U000e0100\u0000\u0000\u5f91\u0000\u5f91\u0000\u5f93\U000e0100\u0000\u0000\u5f93\u0000\u5f93\u0000\u5f9e\U000e0100\u0000\u0000\u5f9e\u0000\u5f9e\u0000\u5fb4\U000e0100\u0000\u0000\u5fb4\u0000\u5fb4\u0000\u5fb5\U000e0100\u0000\u0000\u5fb5\u0000\u5fb5\u0000\u5fdc\U000e0100\u0000\u0000\u5fdc\u0000\u5fdc\u0000\u6046\U000e0100\u0000\u0000\u6046\u0000\u6046\u0000\u604b\U000e0100\u0000\u0000\u604b\u0000\u604b\u0000\u6052\U000e0100\u0000\u0000\u6052\u0000\u6052\u0000\u6075\U000e0100\u0000\u0000\u6075\u0000\u6075\u0000\u60aa\U000e0100\u0000\u0000\u60aa\u0000\u60aa\u0000\u60e0\U000e0100\u0000\u0000\u60e0\u0000\u60e0\u0000\u60e1\U000e0100\u0000\u0000\u60e1\u0000\u60e1\u0000\u60e8\U000e0100\u0000\u0000\u60e8\u0000\u60e8\u0000\u613c\U000e0100\u0000\u0000\u613c\u0000\u613c\u0000\u614e\U000e0100\u0000\u0000\u614e\u0000\u614e\u0000\u6158\U000e0100\u0000\u0000\u6158\u0000\u6158\u0000\u61c9\U000e0100\u0000\u0000\u61c9\u0000\u61c9\u0000\u61d0\U000e0100\u0000\u0000\u61d0\u0000\u61d0\u0000\u61f7\U000e0100\u0000\u0000\u61f7\u0000\u61f7\u0000\u6200\U000e0100\u0000\u0000\u6200\u0000\u6200\u0000\u6226\U000e0100\u0000\u0000\u6226\u0000\u6226\u0000\u622f\U000e0100\u0000\u0000\u622f\u0000\u622f\u0000\u6230\U000e0100\u0000\u0000\u6230\u0000\u6230\u0000\u6232\U000e0100\u0000\u0000\u6232\u0000\u6232\u0000\u629c\U000e0100\u0000\u0000\u629c\u0000\u629c\u0000\u629e\U000e0100\u0000\u0000\u629e\u0000\u629e\u0000\u62c5\U000e0100\u0000\u0000\u62c5\u0000\u62c5\u0000\u62d4\U000e0100\u0000\u0000\u62d4\u0000\u62d4\u0000\u62dc\U000e0100\u0000\u0000\u62dc\u0000\u62dc\u0000\u62dd\U000e0100\u0000\u0000\u62dd\u0000\u62dd\u0000\u62e0\U000e0100\u0000\u0000\u62e0\u0000\u62e0\u0000\u62e1\U000e0100\u0000\u0000\u62e1\u0000\u62e1\u0000\u6319\U000e0100\u0000\u0000\u6319\u0000\u6319\u0000\u631f\U000e0100\u0000\u0000\u631f\u0000\u631f\u0000\u633e\U000e0100\u0000\u0000\u633e\u0000\u633e\u0000\u633f\U000e0100\u0000\u0000\u633f\u0000\u633f\u0000\u635c\U000e0100\u0000\u0000\u635c\u0000\u635c\u0000\u63b2\U000e0100\u0000\u0000\u63b2\u0000\u63b2\u0000\u63d2\U000e0100\u0000\u0000\u63d2\u0000\u63d2\u0000\u63ed\U000e0100\u0000\u0000\u63ed\u0000\u63ed\u0000\u63fa\U000e0100\u0000\u0000\u63fa\u0000\u63fa\u0000\u6416\U000e0100\u0000\u0000\u6416\u0000\u6416\u0000\u641c\U000e0100\u0000\u0000\u641c\u0000\u641c\u0000\u6442\U000e0100\u0000\u0000\u6442\u0000\u6442\u0000\u64c7\U000e0100\u0000\u0000\u64c7\u0000\u64c7\u0000\u64d4\U000e0100\u0000\u0000\u64d4\u0000\u64d4\u0000\u64da\U000e0100\u0000\u0000\u64da\u0000\u64da\u0000\u64e7\U000e0100\u0000\u0000\u64e7\u0000\u64e7\u0000\u64f4\U000e0100\u0000\u0000\u64f4\u0000\u64f4\u0000\u651d\U000e0100\u0000\u0000\u651d\u0000\u651d\u0000\u6536\U000e0100\u0000\u0000\u6536\u0000\u6536\u0000\u6548\U000e0100\u0000\u0000\u6548\u0000\u6548\u0000\u654d\U000e0100\u0000\u0000\u654d\u0000\u654d\u0000\u6555\U000e0100\u0000\u0000\u6555\u0000\u6555\u0000\u6570\U000e0100\u0000\u0000\u6570\u0000\u6570\u0000\u6578\U000e0100\u0000\u0000\u6578\u0000\u6578\u0000\u6589\U000e0100\u0000\u0000\u6589\u0000\u6589\u0000\u658e\U000e0100\u0000\u0000\u658e\u0000\u658e\u0000\u65ad\U000e0100\u0000\u0000\u65ad\u0000\u65ad\u0000\u65b7\U000e0100\u0000\u0000\u65b7\u0000\u65b7\u0000\u65e7\U000e0100\u0000\u0000\u65e7\u0000\u65e7\u0000\u663c\U000e0100\u0000\u0000\u663c\u0000\u663c\u0000\u665d\U000e0100\u0000\u0000\u665d\u0000\u665d\u0000\u6681\U000e0100\u0000\u0000\u6681\u0000\u6681\u0000\u66c9\U000e0100\u0000\u0000\u66c9\u0000\u66c9\u0000\u6703\U000e0100\u0000\u0000\u6703\u0000\u6703\u0000\u6761\U000e0100\u0000\u0000\u6761\u0000\u6761\u0000\u6765\U000e0100\u0000\u0000\u6765\u0000\u6765\u0000\u67a2\U000e0100\u0000\u0000\u67a2\u0000\u67a2\u0000\u6804\U000e0100\u0000\u0000\u6804\u0000\u6804\u0000\u685c\U000e0100\u0000\u0000\u685c\u0000\u685c\u0000\u685f\U000e0100\u0000\u0000\u685f\u0000\u685f\u0000\u6867\U000e0100\u0000\u0000\u6867\u0000\u6867\u0000\u689d\U000e0100\u0000\u0000\u689d\u0000\u689d\u0000\u68e7\U000e0100\u0000\u0000\u68e7\u0000\u68e7\u0000\u691c\U000e0100\u0000\u0000\u691c\u0000\u691c\u0000\u697d\U000e0100\u0000\u0000\u697d\u0000\u697d\u0000\u69ae\U000e0100\u0000\u0000\u69ae\u0000\u69ae\u0000\u69d8\U000e0100\u0000\u0000\u69d8\u0000\u69d8\u0000\u6a02\U000e0100\u0000\u0000\u6a02\u0000\u6a02\u0000\u6a1e\U000e0100\u0000\u0000\u6a1e\u0000\u6a1e\u0000\u6a23\U000e0100\u0000\u0000\u6a23\u0000\u6a23\u0000\u6a29\U000e0100\u0000\u0000\u6a29\u0000\u6a29\u0000\u6a9c\U000e0100\u0000\u0000\u6a9c\u0000\u6a9c\u0000\u6aa2\U000e0100\u0000\u0000\u6aa2\u0000\u6aa2\u0000\u6afb\U000e0100\u0000\u0000\u6afb\u0000\u6afb\u0000\u6b0a\U000e0100\u0000\u0000\u6b0a\u0000\u6b0a\u0000\u6b20\U000e0100\u0000\u0000\u6b20\u0000\u6b20\u0000\u6b27\U000e0100\u0000\u0000\u6b27\u0000\u6b27\u0000\u6b50\U000e0100\u0000\u0000\u6b50\u0000\u6b50\u0000\u6b53\U000e0100\u0000\u0000\u6b53\u0000\u6b53\u0000\u6b61\U000e0100\u0000\u0000\u6b61\u0000\u6b61\u0000\u6b6f\U000e0100\u0000\u0000\u6b6f\u0000\u6b6f\u0000\u6b72\U000e0100\u0000\u0000\u6b72\u0000\u6b72\u0000\u6b73\U000e0100\u0000\u0000\u6b73\u0000\u6b73\u0000\u6b78\U000e0100\u0000\u0000\u6b78\u0000\u6b78\u0000\u6b8b\U000e0100\u0000\u0000\u6b8b\u0000\u6b8b\u0000\u6b98\U000e0100\u0000\u0000\u6b98\u0000\u6b98\u0000\u6bb4\U000e0100\u0000\u0000\u6bb4\u0000\u6bb4\u0000\u6bbb\U000e0100\u0000\u0000\u6bbb\u0000\u6bbb\u0000\u6bbc\U000e0100\u0000\u0000\u6bbc\u0000\u6bbc\u0000\u6bc6\U000e0100\u0000\u0000\u6bc6\u0000\u6bc6\u0000\u6c17\U000e0100\u0000\u0000\u6c17\u0000\u6c17\u0000\u6c23\U000e0100\u0000\u0000\u6c23\u0000\u6c23\u0000\u6c92\U000e0100\u0000\u0000\u6c92\u0000\u6c92\u0000\u6ca1\U000e0100\u0000\u0000\u6ca1\u0000\u6ca1\u0000\u6ca2\U000e0100\u0000\u0000\u6ca2\u0000\u6ca2\u0000\u6d44\U000e0100\u0000\u0000\u6d44\u0000\u6d44\u0000\u6d45\U000e0100\u0000\u0000\u6d45\u0000\u6d45\u0000\u6d99\U000e0100\u0000\u0000\u6d99\u0000\u6d99\u0000\u6dda\U000e0100\u0000\u0000\u6dda\u0000\u6dda\u0000\u6de8\U000e0100\u0000\u0000\u6de8\u0000\u6de8\u0000\u6dfa\U000e0100\u0000\u0000\u6dfa\u0000\u6dfa\u0000\u6e08\U000e0100\u0000\u0000\u6e08\u0000\u6e08\u0000\u6e0b\U000e0100\u0000\u0000\u6e0b\u0000\u6e0b\u0000\u6e13\U000e0100\u0000\u0000\u6e13\u0000\u6e13\u0000\u6e7e\U000e0100\u0000\u0000\u6e7e\u0000\u6e7e\u0000\u6e7f\U000e0100\u0000\u0000\u6e7f\u0000\u6e7f\u0000\u6e80\U000e0100\u0000\u0000\u6e80\u0000\u6e80\u0000\u6eaa\U000e0100\u0000\u0000\u6eaa\u0000\u6eaa\u0000\u6edd\U000e0100\u0000\u0000\u6edd\u0000\u6edd\u0000\u6ede\U000e0100\u0000\u0000\u6ede\u0000\u6ede\u0000\u6eef\U000e0100\u0000\u0000\u6eef\u0000\u6eef\u0000\u6eff\U000e0100\u0000\u0000\u6eff\u0000\u6eff\u0000\u6f5b\U000e0100\u0000\u0000\u6f5b\u0000\u6f5b\u0000\u6f5c\U000e0100\u0000\u0000\u6f5c\u0000\u6f5c\u0000\u6f81\U000e0100\u0000\u0000\u6f81\u0000\u6f81\u0000\u6fa4\U000e0100\u0000\u0000\u6fa4\u0000\u6fa4\u0000\u6fd5\U000e0100\u0000\u0000\u6fd5\u0000\u6fd5\u0000\u6fdf\U000e0100\u0000\u0000\u6fdf\u0000\u6fdf\u0000\u7027\U000e0100\u0000\u0000\u7027\u0000\u7027\u0000\u7063\U000e0100\u0000\u0000\u7063\u0000\u7063\u0000\u706f\U000e0100\u0000\u0000\u706f\u0000\u706f\u0000\u7089\U000e0100\u0000\u0000\u7089\u0000\u7089\u0000\u70b9\U000e0100\u0000\u0000\u70b9\u0000\u70b9\u0000\u70ba\U000e0100\u0000\u70ba\ufe00\u0000\u70ba\u0000\u70ba\u0000\u713c\U000e0100\u0000\u0000\u713c\u0000\u713c\u0000\u71c8\U000e0100\u0000\u0000\u71c8\u0000\u71c8\u0000\u71d2\U000e0100\u0000\u0000\u71d2\u0000\u71d2\u0000\u71df\U000e0100\u0000\u0000\u71df\u0000\u71df\u0000\u7210\U000e0100\u0000\u0000\u7210\u0000\u7210\u0000\u722d\U000e0100\u0000\u0000\u722d\u0000\u722d\u0000\u7232\U000e0100\u0000\u0000\u7232\u0000\u7232\u0000\u72a0\U000e0100\u0000\u0000\u72a0\u0000\u72a0\u0000\u72a7\U000e0100\u0000\u0000\u72a7\u0000\u72a7\u0000\u72b6\U000e0100\u0000\u0000\u72b6\u0000\u72b6\u0000\u72c0\U000e0100\u0000\u0000\u72c0\u0000\u72c0\u0000\u72ec\U000e0100\u0000\u0000\u72ec\u0000\u72ec\u0000\u72ed\U000e0100\u0000\u0000\u72ed\u0000\u72ed\u0000\u72f9\U000e0100\u0000\u0000\u72f9\u0000\u72f9\u0000\u731f\U000e0100\u0000\u0000\u731f\u0000\u731f\u0000\u732e\U000e0100\u0000\u0000\u732e\u0000\u732e\u0000\u7363\U000e0100\u0000\u0000\u7363\u0000\u7363\u0000\u7368\U000e0100\u0000\u0000\u7368\u0000\u7368\u0000\u7375\U000e0100\u0000\u0000\u7375\u0000\u7375\u0000\u7378\U000e0100\u0000\u0000\u7378\u0000\u7378\u0000\u737b\U000e0100\u0000\u0000\u737b\u0000\u737b\u0000\u74e3\U000e0100\u0000\u0000\u74e3\u0000\u74e3\u0000\u753b\U000e0100\u0000\u0000\u753b\u0000\u753b\u0000\u756b\U000e0100\u0000\u0000\u756b\u0000\u756b\u0000\u7573\U000e0100\u0000\u0000\u7573\u0000\u7573\u0000\u7576\U000e0100\u0000\u0000\u7576\u0000\u7576\u0000\u758a\U000e0100\u0000\u0000\u758a\u0000\u758a\u0000\u767a\U000e0100\u0000\u0000\u767a\u0000\u767a\u0000\u767c\U000e0100\u0000\u0000\u767c\u0000\u767c\u0000\u76d7\U000e0100\u0000\u0000\u76d7\u0000\u76d7\u0000\u76dc\U000e0100\u0000\u0000\u76dc\u0000\u76dc\u0000\u76e1\U000e0100\u0000\u0000\u76e1\u0000\u76e1\u0000\u770c\U000e0100\u0000\u0000\u770c\u0000\u770c\u0000\u771e\U000e0100\u0000\u0000\u771e\u0000\u771e\u0000\u771f\U000e0100\u0000\u0000\u771f\u0000\u771f\u0000\u7815\U000e0100\u0000\u0000\u7815\u0000\u7815\u0000\u788e\U000e0100\u0000\u0000\u788e\u0000\u788e\u0000\u793c\U000e0100\u0000\u0000\u793c\u0000\u793c\u0000\u7985\U000e0100\u0000\u0000\u7985\u0000\u7985\u0000\u79aa\U000e0100\u0000\u0000\u79aa\u0000\u79aa\u0000\u79ae\U000e0100\u0000\u0000\u79ae\u0000\u79ae\u0000\u79f0\U000e0100\u0000\u0000\u79f0\u0000\u79f0\u0000\u7a31\U000e0100\u0000\u0000\u7a31\u0000\u7a31\u0000\u7a32\U000e0100\u0000\u0000\u7a32\u0000\u7a32\u0000\u7a3b\U000e0100\u0000\u0000\u7a3b\u0000\u7a3b\u0000\u7a42\U000e0100\u0000\u0000\u7a42\u0000\u7a42\u0000\u7a57\U000e0100\u0000\u0000\u7a57\u0000\u7a57\u0000\u7a83\U000e0100\u0000\u0000\u7a83\u0000\u7a83\u0000\u7aca\U000e0100\u0000\u0000\u7aca\u0000\u7aca\u0000\u7adc\U000e0100\u0000\u0000\u7adc\u0000\u7adc\u0000\u7c8b\U000e0100\u0000\u0000\u7c8b\u0000\u7c8b\u0000\u7c9b\U000e0100\u0000\u0000\u7c9b\u0000\u7c9b\u0000\u7cb9\U000e0100\u0000\u0000\u7cb9\u0000\u7cb9\u0000\u7cf8\U000e0100\u0000\u0000\u7cf8\u0000\u7cf8\u0000\u7d4c\U000e0100\u0000\u0000\u7d4c\u0000\u7d4c\u0000\u7d72\U000e0100\u0000\u0000\u7d72\u0000\u7d72\u0000\u7d75\U000e0100\u0000\u0000\u7d75\u0000\u7d75\u0000\u7d93\U000e0100\u0000\u0000\u7d93\u0000\u7d93\u0000\u7d99\U000e0100\u0000\u0000\u7d99\u0000\u7d99\u0000\u7d9a\U000e0100\u0000\u0000\u7d9a\u0000\u7d9a\u0000\u7da0\U000e0100\u0000\u0000\u7da0\u0000\u7da0\u0000\u7dcf\U000e0100\u0000\u0000\u7dcf\u0000\u7dcf\u0000\u7dd1\U000e0100\u0000\u0000\u7dd1\u0000\u7dd1\u0000\u7dd2\U000e0100\u0000\u0000\u7dd2\u0000\u7dd2\u0000\u7dd6\U000e0100\u0000\u0000\u7dd6\u0000\u7dd6\u0000\u7de3\U000e0100\u0000\u0000\u7de3\u0000\u7de3\u0000\u7e01\U000e0100\u0000\u0000\u7e01\u0000\u7e01\u0000\u7e04\U000e0100\u0000\u0000\u7e04\u0000\u7e04\u0000\u7e23\U000e0100\u0000\u0000\u7e23\u0000\u7e23\u0000\u7e26\U000e0100\u0000\u0000\u7e26\u0000\u7e26\u0000\u7e31\U000e0100\u0000\u0000\u7e31\u0000\u7e31\u0000\u7e3d\U000e0100\u0000\u0000\u7e3d\u0000\u7e3d\u0000\u7e4a\U000e0100\u0000\u0000\u7e4a\u0000\u7e4a\u0000\u7e69\U000e0100\u0000\u0000\u7e69\u0000\u7e69\u0000\u7e6a\U000e0100\u0000\u0000\u7e6a\u0000\u7e6a\u0000\u7e7c\U000e0100\u0000\u0000\u7e7c\u0000\u7e7c\u0000\u7e8c\U000e0100\u0000\u0000\u7e8c\u0000\u7e8c\u0000\u7e96\U000e0100\u0000\u0000\u7e96\u0000\u7e96\u0000\u7f36\U000e0100\u0000\u0000\u7f36\u0000\u7f36\u0000\u7f3a\U000e0100\u0000\u0000\u7f3a\u0000\u7f3a\u0000\u7f50\U000e0100\u0000\u0000\u7f50\u0000\u7f50\u0000\u8061\U000e0100\u0000\u0000\u8061\u0000\u8061\u0000\u8070\U000e0100\u0000\u0000\u8070\u0000\u8070\u0000\u8072\U000e0100\u0000\u0000\u8072\u0000\u8072\u0000\u8074\U000e0100\u0000\u0000\u8074\u0000\u8074\u0000\u807d\U000e0100\u0000\u0000\u807d\u0000\u807d\u0000\u8085\U000e0100\u0000\u0000\u8085\u0000\u8085\u0000\u80c6\U000e0100\u0000\u0000\u80c6\u0000\u80c6\u0000\u8133\U000e0100\u0000\u0000\u8133\u0000\u8133\u0000\u8166\U000e0100\u0000\u0000\u8166\u0000\u8166\u0000\u81bd\U000e0100\u0000\u0000\u81bd\u0000\u81bd\u0000\u81d3\U000e0100\u0000\u0000\u81d3\u0000\u81d3\u0000\u81df\U000e0100\u0000\u0000\u81df\u0000\u81df\u0000\u81fa\U000e0100\u0000\u0000\u81fa\u0000\u81fa\u0000\u8207\U000e0100\u0000\u0000\u8207\u0000\u8207\u0000\u820a\U000e0100\u0000\u0000\u820a\u0000\u820a\u0000\u820d\U000e0100\u0000\u0000\u820d\u0000\u820d\u0000\u820e\U000e0100\u0000\u0000\u820e\u0000\u820e\u0000\u82b8\U000e0100\u0000\u0000\u82b8\u0000\u82b8\u0000\u830e\U000e0100\u0000\u0000\u830e\u0000\u830e\u0000\u8358\U000e0100\u0000\u0000\u8358\u0000\u8358\u0000\u838a\U000e0100\u0000\u0000\u838a\u0000\u838a\u0000\u8396\U000e0100\u0000\u0000\u8396\u0000\u8396\u0000\u845b\U000e0100\u0000\u845b\ufe00\u0000\u845b\u0000\u845b\u0000\u8535\U000e0100\u0000\u0000\u8535\u0000\u8535\u0000\u85ac\U000e0100\u0000\u0000\u85ac\u0000\u85ac\u0000\u85cf\U000e0100\u0000\u0000\u85cf\u0000\u85cf\u0000\u85dd\U000e0100\u0000\u0000\u85dd\u0000\u85dd\u0000\u85e5\U000e0100\u0000\u0000\u85e5\u0000\u85e5\u0000\u8655\U000e0100\u0000\u0000\u8655\u0000\u8655\u0000\u865a\U000e0100\u0000\u0000\u865a\u0000\u865a\u0000\u865b\U000e0100\u0000\u0000\u865b\u0000\u865b\u0000\u865f\U000e0100\u0000\u0000\u865f\u0000\u865f\u0000\u866b\U000e0100\u0000\u0000\u866b\u0000\u866b\u0000\u8695\U000e0100\u0000\u0000\u8695\u0000\u8695\u0000\u86cd\U000e0100\u0000\u0000\u86cd\u0000\u86cd\u0000\u86ee\U000e0100\u0000\u0000\u86ee\u0000\u86ee\u0000\u87a2\U000e0100\u0000\u0000\u87a2\u0000\u87a2\u0000\u87f2\U000e0100\u0000\u0000\u87f2\u0000\u87f2\u0000\u8836\U000e0100\u0000\u0000\u8836\u0000\u8836\u0000\u883b\U000e0100\u0000\u0000\u883b\u0000\u883b\u0000\u885b\U000e0100\u0000\u0000\u885b\u0000\u885b\u0000\u885e\U000e0100\u0000\u0000\u885e\u0000\u885e\u0000\u88c5\U000e0100\u0000\u0000\u88c5\u0000\u88c5\u0000\u88dd\U000e0100\u0000\u0000\u88dd\u0000\u88dd\u0000\u8987\U000e0100\u0000\u0000\u8987\u0000\u8987\u0000\u899a\U000e0100\u0000\u0000\u899a\u0000\u899a\u0000\u89a7\U000e0100\u0000\u0000\u89a7\u0000\u89a7\u0000\u89b3\U000e0100\u0000\u0000\u89b3\u0000\u89b3\u0000\u89ba\U000e0100\u0000\u0000\u89ba\u0000\u89ba\u0000\u89bd\U000e0100\u0000\u0000\u89bd\u0000\u89bd\u0000\u89c0\U000e0100\u0000\u0000\u89c0\u0000\u89c0\u0000\u89e6\U000e0100\u0000\u0000\u89e6\u0000\u89e6\u0000\u89f8\U000e0100\u0000\u0000\u89f8\u0000\u89f8\u0000\u8a33\U000e0100\u0000\u0000\u8a33\u0000\u8a33\u0000\u8a3c\U000e0100\u0000\u0000\u8a3c\u0000\u8a3c\u0000\u8a89\U000e0100\u0000\u0000\u8a89\u0000\u8a89\u0000\u8aad\U000e0100\u0000\u0000\u8aad\u0000\u8aad\u0000\u8b20\U000e0100\u0000\u0000\u8b20\u0000\u8b20\u0000\u8b21\U000e0100\u0000\u0000\u8b21\u0000\u8b21\u0000\u8b49\U000e0100\u0000\u0000\u8b49\u0000\u8b49\u0000\u8b6f\U000e0100\u0000\u0000\u8b6f\u0000\u8b6f\u0000\u8b72\U000e0100\u0000\u0000\u8b72\u0000\u8b72\u0000\u8b7d\U000e0100\u0000\u0000\u8b7d\u0000\u8b7d\u0000\u8b80\U000e0100\u0000\u0000\u8b80\u0000\u8b80\u0000\u8b8a\U000e0100\u0000\u0000\u8b8a\u0000\u8b8a\u0000\u8b93\U000e0100\u0000\u0000\u8b93\u0000\u8b93\u0000\u8c4a\U000e0100\u0000\u0000\u8c4a\u0000\u8c4a\u0000\u8c50\U000e0100\u0000\u0000\u8c50\u0000\u8c50\u0000\u8c6b\U000e0100\u0000\u0000\u8c6b\u0000\u8c6b\u0000\u8cb3\U000e0100\u0000\u0000\u8cb3\u0000\u8cb3\u0000\u8cdb\U000e0100\u0000\u0000\u8cdb\u0000\u8cdb\u0000\u8ce3\U000e0100\u0000\u0000\u8ce3\u0000\u8ce3\u0000\u8cf4\U000e0100\u0000\u0000\u8cf4\u0000\u8cf4\u0000\u8d0a\U000e0100\u0000\u0000\u8d0a\u0000\u8d0a\u0000\u8df5\U000e0100\u0000\u0000\u8df5\u0000\u8df5\u0000\u8e10\U000e0100\u0000\u0000\u8e10\u0000\u8e10\u0000\u8ee2\U000e0100\u0000\u0000\u8ee2\u0000\u8ee2\u0000\u8efd\U000e0100\u0000\u0000\u8efd\u0000\u8efd\u0000\u8f15\U000e0100\u0000\u0000\u8f15\u0000\u8f15\u0000\u8f49\U000e0100\u0000\u0000\u8f49\u0000\u8f49\u0000\u8f9e\U000e0100\u0000\u0000\u8f9e\u0000\u8f9e\u0000\u8fa8\U000e0100\u0000\u0000\u8fa8\u0000\u8fa8\u0000\u8fad\U000e0100\u0000\u0000\u8fad\u0000\u8fad\u0000\u8fba\U000e0100\u0000\u0000\u8fba\u0000\u8fba\u0000\u9013\U000e0100\u0000\u0000\u9013\u0000\u9013\u0000\u9038\U000e0100\u0000\u9038\ufe01\u0000\u9038\u0000\u9038\u0000\u9045\U000e0100\u0000\u0000\u9045\u0000\u9045\u0000\u905e\U000e0100\u0000\u0000\u905e\u0000\u905e\u0000\u9072\U000e0100\u0000\u0000\u9072\u0000\u9072\u0000\u908a\U000e0100\u0000\u0000\u908a\u0000\u908a\u0000\u9154\U000e0100\u0000\u0000\u9154\u0000\u9154\u0000\u9189\U000e0100\u0000\u0000\u9189\u0000\u9189\u0000\u91ab\U000e0100\u0000\u0000\u91ab\u0000\u91ab\u0000\u91b8\U000e0100\u0000\u0000\u91b8\u0000\u91b8\u0000\u91c0\U000e0100\u0000\u0000\u91c0\u0000\u91c0\u0000\u91c8\U000e0100\u0000\u0000\u91c8\u0000\u91c8\u0000\u91cb\U000e0100\u0000\u0000\u91cb\u0000\u91cb\u0000\u9244\U000e0100\u0000\u0000\u9244\u0000\u9244\u0000\u9271\U000e0100\u0000\u0000\u9271\u0000\u9271\u0000\u92ad\U000e0100\u0000\u0000\u92ad\u0000\u92ad\u0000\u92f3\U000e0100\u0000\u0000\u92f3\u0000\u92f3\u0000\u9304\U000e0100\u0000\u0000\u9304\u0000\u9304\u0000\u9322\U000e0100\u0000\u0000\u9322\u0000\u9322\u0000\u9332\U000e0100\u0000\u0000\u9332\u0000\u9332\u0000\u93ad\U000e0100\u0000\u0000\u93ad\u0000\u93ad\u0000\u93ae\U000e0100\u0000\u0000\u93ae\u0000\u93ae\u0000\u9435\U000e0100\u0000\u0000\u9435\u0000\u9435\u0000\u9444\U000e0100\u0000\u0000\u9444\u0000\u9444\u0000\u945b\U000e0100\u0000\u0000\u945b\u0000\u945b\u0000\u95a2\U000e0100\u0000\u0000\u95a2\u0000\u95a2\u0000\u95dc\U000e0100\u0000\u0000\u95dc\u0000\u95dc\u0000\u9665\U000e0100\u0000\u0000\u9665\u0000\u9665\u0000\u9677\U000e0100\u0000\u0000\u9677\u0000\u9677\u0000\u967a\U000e0100\u0000\u0000\u967a\u0000\u967a\u0000\u968f\U000e0100\u0000\u0000\u968f\u0000\u968f\u0000\u96a0\U000e0100\u0000\u0000\u96a0\u0000\u96a0\u0000\u96a8\U000e0100\u0000\u0000\u96a8\u0000\u96a8\u0000\u96aa\U000e0100\u0000\u0000\u96aa\u0000\u96aa\u0000\u96b1\U000e0100\u0000\u0000\u96b1\u0000\u96b1\u0000\u96b7\U000e0100\u0000\u0000\u96b7\u0000\u96b7\u0000\u96b8\U000e0100\u0000\u0000\u96b8\u0000\u96b8\u0000\u96d9\U000e0100\u0000\u0000\u96d9\u0000\u96d9\u0000\u970a\U000e0100\u0000\u0000\u970a\u0000\u970a\u0000\u9738\U000e0100\u0000\u0000\u9738\u0000\u9738\u0000\u9748\U000e0100\u0000\u0000\u9748\u0000\u9748\u0000\u9759\U000e0100\u0000\u0000\u9759\u0000\u9759\u0000\u975c\U000e0100\u0000\u0000\u975c\u0000\u975c\u0000\u983c\U000e0100\u0000\u0000\u983c\u0000\u983c\u0000\u9855\U000e0100\u0000\u0000\u9855\u0000\u9855\u0000\u986f\U000e0100\u0000\u0000\u986f\u0000\u986f\u0000\u98ee\U000e0100\u0000\u0000\u98ee\u0000\u98ee\u0000\u98f2\U000e0100\u0000\u0000\u98f2\u0000\u98f2\u0000\u9918\U000e0100\u0000\u0000\u9918\u0000\u9918\u0000\u99c5\U000e0100\u0000\u0000\u99c5\u0000\u99c5\u0000\u99c6\U000e0100\u0000\u0000\u99c6\u0000\u99c6\u0000\u9a12\U000e0100\u0000\u0000\u9a12\u0000\u9a12\u0000\u9a13\U000e0100\u0000\u0000\u9a13\u0000\u9a13\u0000\u9a37\U000e0100\u0000\u0000\u9a37\u0000\u9a37\u0000\u9a45\U000e0100\u0000\u0000\u9a45\u0000\u9a45\u0000\u9a57\U000e0100\u0000\u0000\u9a57\u0000\u9a57\u0000\u9a5b\U000e0100\u0000\u0000\u9a5b\u0000\u9a5b\u0000\u9ac4\U000e0100\u0000\u0000\u9ac4\u0000\u9ac4\u0000\u9ad3\U000e0100\u0000\u0000\u9ad3\u0000\u9ad3\u0000\u9ad4\U000e0100\u0000\u0000\u9ad4\u0000\u9ad4\u0000\u9aea\U000e0100\u0000\u0000\u9aea\u0000\u9aea\u0000\u9aee\U000e0100\u0000\u0000\u9aee\u0000\u9aee\u0000\u9d8f\U000e0100\u0000\u0000\u9d8f\u0000\u9d8f\u0000\u9dc4\U000e0100\u0000\u0000\u9dc4\u0000\u9dc4\u0000\u9e7d\U000e0100\u0000\u0000\u9e7d\u0000\u9e7d\u0000\u9ea5\U000e0100\u0000\u0000\u9ea5\u0000\u9ea5\u0000\u9ea6\U000e0100\u0000\u0000\u9ea6\u0000\u9ea6\u0000\u9ede\U000e0100\u0000\u0000\u9ede\u0000\u9ede\u0000\u9ee8\U000e0100\u0000\u0000\u9ee8\u0000\u9ee8\u0000\u9f4a\U000e0100\u0000\u0000\u9f4a\u0000\u9f4a\u0000\u9f4b\U000e0100\u0000\u0000\u9f4b\u0000\u9f4b\u0000\u9f52\U000e0100\u0000\u0000\u9f52\u0000\u9f52\u0000\u9f61\U000e0100\u0000\u0000\u9f61\u0000\u9f61\u0000\u9f62\U000e0100\u0000\u0000\u9f62\u0000\u9f62\u0000\u9f8d\U000e0100\u0000\u0000\u9f8d\u0000\u9f8d\u0000\u9f9c\U000e0100\u0000\u0000\u9f9c\u0000\u9f9c\u0000\u8fbb\U000e0100\u0000\u0000\u8fbb\u0000\u0000\u8fbb\U000e0101\u0000\u0000\u0000\u8fbb"

var (
	ivsSvsBaseOnce           sync.Once
	ivsSvsBaseToVariants2004 map[string]*ivsSvsBaseRecord
	ivsSvsBaseToVariants90   map[string]*ivsSvsBaseRecord
	ivsSvsVariantsToBase     map[string]*ivsSvsBaseRecord
)

func populateIvsSvsLookupTables() {
	ivsSvsBaseOnce.Do(func() {
		fields := strings.Split(ivsSvsBaseCompressedData, "\x00")
		ivsSvsBaseToVariants2004 = make(map[string]*ivsSvsBaseRecord)
		ivsSvsBaseToVariants90 = make(map[string]*ivsSvsBaseRecord)
		ivsSvsVariantsToBase = make(map[string]*ivsSvsBaseRecord)
		for i := 0; i+3 < len(fields); i += 4 {
			record := &ivsSvsBaseRecord{
				ivs:      fields[i],
				svs:      fields[i+1],
				base90:   fields[i+2],
				base2004: fields[i+3],
			}
			if record.ivs == "" {
				continue
			}
			if record.base2004 != "" {
				if _, ok := ivsSvsBaseToVariants2004[record.base2004]; !ok {
					ivsSvsBaseToVariants2004[record.base2004] = record
				}
			}
			if record.base90 != "" {
				if _, ok := ivsSvsBaseToVariants90[record.base90]; !ok {
					ivsSvsBaseToVariants90[record.base90] = record
				}
			}
			ivsSvsVariantsToBase[record.ivs] = record
			if record.svs != "" {
				ivsSvsVariantsToBase[record.svs] = record
			}
		}
	})
}

// baseToVariantsMappings returns the base-to-variant table for the
// charset, used by the ivs-or-svs mode.
func baseToVariantsMappings(charset string) map[string]*ivsSvsBaseRecord {
	populateIvsSvsLookupTables()
	if charset == "unijis_90" {
		return ivsSvsBaseToVariants90
	}
	return ivsSvsBaseToVariants2004
}

// variantsToBaseMappings returns the variant-to-base table used by the
// base mode.
func variantsToBaseMappings() map[string]*ivsSvsBaseRecord {
	populateIvsSvsLookupTables()
	return ivsSvsVariantsToBase
}
